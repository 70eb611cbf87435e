package util

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"
)

const maxBinaryCheckBytes = 512

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Smart quotes, dashes and other Windows-1252 leftovers that show up in
// prompts pasted from word processors.
var charReplacementMap = map[string]string{
	"\u2018": "'", "\u2019": "'", "\u201C": "\"", "\u201D": "\"",
	"\u2013": "-", "\u2014": "--", "\u2026": "...", "\u00a0": " ",
	"\u0091": "'", "\u0092": "'", "\u0093": "\"", "\u0094": "\"",
}

// ReadPromptFile loads prompt content from disk for the add/suggest commands.
// Binary files are rejected; text is normalized before being annotated.
func ReadPromptFile(path string) (string, error) {
	binary, err := isLikelyBinary(path)
	if err != nil {
		return "", err
	}
	if binary {
		return "", fmt.Errorf("%s looks like a binary file, not prompt text", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return CleanPromptText(data, path)
}

func isLikelyBinary(path string) (bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer file.Close()

	buffer := make([]byte, maxBinaryCheckBytes)
	n, err := file.Read(buffer)
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	return bytes.Contains(buffer[:n], []byte{0}), nil
}

// CleanPromptText strips a UTF-8 BOM, repairs invalid UTF-8, and replaces
// problematic punctuation so the stored content round-trips cleanly through
// the model prompt and the JSON API.
func CleanPromptText(raw []byte, src string) (string, error) {
	raw = bytes.TrimPrefix(raw, utf8BOM)

	if !utf8.Valid(raw) {
		log.Warnf("%s contains invalid UTF-8, replacing invalid chars", src)
		raw = bytes.ToValidUTF8(raw, []byte(string(utf8.RuneError)))
	}

	str := string(raw)
	for bad, good := range charReplacementMap {
		str = strings.ReplaceAll(str, bad, good)
	}

	if !utf8.ValidString(str) {
		return "", fmt.Errorf("invalid UTF-8 after replacements: %s", src)
	}
	return str, nil
}

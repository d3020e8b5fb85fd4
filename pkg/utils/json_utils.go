package utils

import (
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

const DefaultJSONIndent = 2

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ConvertToJSON converts the provided value to an indented JSON string.
func ConvertToJSON(data any) (string, error) {
	j, err := json.MarshalIndent(data, "", strings.Repeat(" ", DefaultJSONIndent))
	if err != nil {
		return "", err
	}
	return string(j), nil
}

// WriteAsJSON writes the provided value to w as indented JSON followed by a newline.
func WriteAsJSON(w io.Writer, data any) error {
	j, err := ConvertToJSON(data)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, j+"\n")
	return err
}

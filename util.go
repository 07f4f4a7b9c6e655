package main

import (
	"bufio"
	"encoding/json"
	"os"
)

// writeJSON writes the data to the file as tab-indented JSON.
func writeJSON(filename string, data interface{}) (err error) {
	out, err := os.Create(filename)
	if err != nil {
		return
	}
	defer func() {
		closeErr := out.Close()
		if err == nil {
			err = closeErr
		}
	}()

	buf := bufio.NewWriter(out)

	encoder := json.NewEncoder(buf)
	encoder.SetIndent("", "\t")
	encoder.SetEscapeHTML(false)
	if err = encoder.Encode(data); err != nil {
		return
	}
	return buf.Flush()
}

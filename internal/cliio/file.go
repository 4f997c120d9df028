package cliio

import (
	"bufio"
	"os"
)

// LoadFile reads the key-material file format of spec.md §6: one field per
// line, each beginning with a single tag character, followed by any two
// separator characters (conventionally ": "), followed by the value. A
// blank trailing line is tolerated. Grounded on
// original_source/src/rsacont.cpp's inputFromFile.
func LoadFile(path string) ([]Assignment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var assigns []Assignment
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < 3 {
			continue
		}
		assigns = append(assigns, Assignment{Tag: line[0], Text: line[3:]})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return assigns, nil
}

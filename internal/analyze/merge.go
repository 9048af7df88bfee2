package analyze

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Merge concatenates summary CSV files into output: the header of the
// first file once, then every body row in argument order. Each file
// must carry the identical header; a deviation is a
// SchemaMismatchError, never silently ignored.
func Merge(inputs []string, output string) error {
	if len(inputs) == 0 {
		return ErrNoInputFiles
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("cannot create merge output %q: %w", output, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := MergeTo(w, inputs); err != nil {
		return err
	}
	return w.Flush()
}

// MergeTo writes the merged table to w. Each input is read in a single
// pass: the first file's header is written through and becomes the
// shared schema, every later file's header is validated against it and
// dropped.
func MergeTo(w io.Writer, inputs []string) error {
	if len(inputs) == 0 {
		return ErrNoInputFiles
	}

	header, err := appendFile(w, inputs[0], "")
	if err != nil {
		return err
	}
	for _, input := range inputs[1:] {
		if _, err := appendFile(w, input, header); err != nil {
			return err
		}
	}
	return nil
}

// appendFile streams one summary file to w. With an empty want the
// file's header is written through and returned; otherwise it is
// checked against want before any body row is written.
func appendFile(w io.Writer, input, want string) (string, error) {
	f, err := os.Open(input)
	if err != nil {
		return "", fmt.Errorf("cannot open input file %q: %w", input, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("cannot read input file %q: %w", input, err)
		}
		return "", &SchemaMismatchError{File: input, Want: "summary header", Got: "empty file"}
	}

	header := scanner.Text()
	if want == "" {
		if _, err := fmt.Fprintln(w, header); err != nil {
			return "", err
		}
	} else if header != want {
		return "", &SchemaMismatchError{File: input, Want: want, Got: header}
	}

	for scanner.Scan() {
		if _, err := fmt.Fprintln(w, scanner.Text()); err != nil {
			return "", err
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("cannot read input file %q: %w", input, err)
	}
	return header, nil
}

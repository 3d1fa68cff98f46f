package histogram

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Fprint writes the histogram to w as bin values separated by single spaces:
// each value is followed by one space, with no header and no trailing
// newline. Whole counts print without a decimal point, so [3 0 7 2] becomes
// the text "3 0 7 2 ".
func Fprint(w io.Writer, h Histogram) error {
	for _, count := range h {
		if _, err := io.WriteString(w, strconv.FormatFloat(count, 'g', -1, 64)+" "); err != nil {
			return err
		}
	}
	return nil
}

// Print writes the histogram to standard output in the Fprint form.
func Print(h Histogram) {
	_ = Fprint(os.Stdout, h)
}

// WriteFile dumps the histogram to path in the Fprint form, overwriting any
// existing content.
func WriteFile(h Histogram, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create histogram file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := Fprint(w, h); err != nil {
		return fmt.Errorf("failed to write histogram: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write histogram: %w", err)
	}
	return nil
}

// Parse reads a whitespace-delimited histogram dump back into a Histogram.
func Parse(r io.Reader) (Histogram, error) {
	var h Histogram

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		count, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("bad bin count %q: %w", scanner.Text(), err)
		}
		h = append(h, count)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read histogram: %w", err)
	}

	return h, nil
}

// ReadFile parses a histogram previously written with WriteFile.
func ReadFile(path string) (Histogram, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open histogram file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

package dmdec

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// WriteSizes writes the closed set sizes file: a single line of
// space-separated block sizes in emission order, newline terminated.
func (d *Decomposition) WriteSizes(path string) error {
	return writeFile(path, d.writeSizes)
}

func (d *Decomposition) writeSizes(w io.Writer) error {
	for _, b := range d.Blocks {
		if _, err := fmt.Fprintf(w, "%d ", b.Size()); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// WriteFine writes the fine decomposition file: the block count on the
// first line, then for each block a size line, a line of its public key
// indices, and a line of the key image indices matched to them.
func (d *Decomposition) WriteFine(path string) error {
	return writeFile(path, d.writeFine)
}

func (d *Decomposition) writeFine(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%d\n", len(d.Blocks)); err != nil {
		return err
	}
	for _, b := range d.Blocks {
		if _, err := fmt.Fprintf(w, "%d\n", b.Size()); err != nil {
			return err
		}
		for _, pk := range b.PubKeys {
			if _, err := fmt.Fprintf(w, "%d ", pk); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
		for _, ki := range b.KeyImages {
			if _, err := fmt.Fprintf(w, "%d ", ki); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, fill func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dmdec: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := fill(w); err != nil {
		return fmt.Errorf("dmdec: write %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("dmdec: write %s: %w", path, err)
	}
	return nil
}

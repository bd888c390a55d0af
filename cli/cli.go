package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/BinaryMelodies/msbasic-savefile-re/detok"
)

// Run decodes each named save file and writes the listings to out in
// argument order. Warnings and errors go to errOut. The return value is
// the process exit code, zero only when every file decoded cleanly.
func Run(out, errOut io.Writer, files []string) int {
	if len(files) == 0 {
		fmt.Fprintln(errOut, "no input files")
		return 2
	}

	rc := 0
	for _, name := range files {
		if err := decodeOne(out, errOut, name); err != nil {
			fmt.Fprintf(errOut, "%s: %s\n", name, err.Error())
			rc = 1
		}
	}

	return rc
}

func decodeOne(out, errOut io.Writer, name string) error {
	src, err := os.ReadFile(name)

	if err != nil {
		return err
	}

	lst, err := detok.Decode(src)

	if err != nil {
		return err
	}

	for _, warn := range lst.Warnings() {
		fmt.Fprintf(errOut, "%s: warning: %s\n", name, warn)
	}

	_, err = io.WriteString(out, lst.Text())

	return err
}

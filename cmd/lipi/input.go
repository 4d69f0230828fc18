package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// addInputFlags adds the flags of commands reading texts.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().String("file", "", "Read texts from file, one per line (default stdin)")
	cmd.Flags().String("encoding", "", "Character encoding of the input, e.g. utf-16le or iso-8859-1")
	cmd.Flags().Bool("nfc", false, "Normalize input to Unicode NFC before detection")
	cmd.Flags().String("default", "", "Scheme to report if nothing matches")
	cmd.Flags().Bool("skip-sgml", false, "Ignore SGML/XML tags in the input")
}

// newDecoder wraps r to decode from the given encoding to UTF-8, optionally
// normalizing to NFC.
func newDecoder(r io.Reader, encoding string, nfc bool) (io.Reader, error) {
	var chain []transform.Transformer
	if encoding != "" && !strings.EqualFold(encoding, "utf-8") {
		enc, err := htmlindex.Get(encoding)
		if err != nil {
			return nil, fmt.Errorf("input encoding %q: %w", encoding, err)
		}
		chain = append(chain, enc.NewDecoder())
	}
	if nfc {
		chain = append(chain, norm.NFC)
	}
	if len(chain) == 0 {
		return r, nil
	}
	return transform.NewReader(r, transform.Chain(chain...)), nil
}

// readTexts collects the texts to process: the command arguments if present,
// else the lines of --file or stdin.
func readTexts(cmd *cobra.Command, s *settings, args []string) ([]string, error) {
	if len(args) > 0 {
		if !s.config.Input.NFC {
			return args, nil
		}
		texts := make([]string, len(args))
		for i, arg := range args {
			texts[i] = norm.NFC.String(arg)
		}
		return texts, nil
	}

	var in io.Reader = cmd.InOrStdin()
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		in = f
	}
	r, err := newDecoder(in, s.config.Input.Encoding, s.config.Input.NFC)
	if err != nil {
		return nil, err
	}

	var texts []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		texts = append(texts, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	s.logger.Debug("read input", "texts", len(texts))
	return texts, nil
}

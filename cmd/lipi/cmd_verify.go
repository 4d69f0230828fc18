package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/lipi"
	"github.com/npillmayer/lipi/corpus"
	"github.com/spf13/cobra"
)

// mismatch is a corpus sample detected as a different scheme than labeled.
type mismatch struct {
	Line int    `json:"line"`
	Text string `json:"text"`
	Want string `json:"want"`
	Got  string `json:"got"`
}

// verifyReport summarizes a corpus run.
type verifyReport struct {
	Corpus     string     `json:"corpus"`
	Identifier string     `json:"identifier,omitempty"`
	Samples    int        `json:"samples"`
	Mismatches []mismatch `json:"mismatches"`
}

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <corpus-file>",
		Short: "Check detection against a labeled corpus",
		Long: `Detect every sample of a labeled corpus and report the samples whose
detected scheme differs from their label. Exits with an error if any sample
mismatches.

A corpus has one sample per line: a scheme name, whitespace, and the text.
Lines starting with % are comments.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			var r io.Reader
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening corpus: %w", err)
			}
			defer f.Close()
			if r, err = newDecoder(f, s.config.Input.Encoding, s.config.Input.NFC); err != nil {
				return err
			}
			// Labels are verified as is, without a fallback scheme.
			d := lipi.NewDetector(lipi.WithSkipSGML(s.config.Detect.SkipSGML))
			report, err := verifyCorpus(d, r)
			if err != nil {
				return fmt.Errorf("verifying %s: %w", args[0], err)
			}
			report.Corpus = args[0]
			s.logger.Debug("corpus verified", "corpus", report.Corpus,
				"samples", report.Samples, "mismatches", len(report.Mismatches))

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				for _, m := range report.Mismatches {
					fmt.Fprintf(cmd.OutOrStdout(), "line %d: want %s, got %s: %s\n", m.Line, m.Want, m.Got, m.Text)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d samples, %d mismatches\n", report.Samples, len(report.Mismatches))
			}
			if len(report.Mismatches) > 0 {
				return fmt.Errorf("%s: %d of %d samples mismatch", args[0], len(report.Mismatches), report.Samples)
			}
			return nil
		},
	}
	cmd.Flags().String("encoding", "", "Character encoding of the corpus")
	cmd.Flags().Bool("nfc", false, "Normalize the corpus to Unicode NFC before detection")
	cmd.Flags().Bool("skip-sgml", false, "Ignore SGML/XML tags in samples")
	return cmd
}

// verifyCorpus detects every sample of a corpus.
func verifyCorpus(d *lipi.Detector, r io.Reader) (*verifyReport, error) {
	report := &verifyReport{Mismatches: []mismatch{}}
	cr := corpus.NewReader(r)
	for {
		sample, err := cr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return report, err
		}
		report.Samples++
		if got := d.Detect(sample.Text); got != sample.Want {
			report.Mismatches = append(report.Mismatches, mismatch{
				Line: sample.Line,
				Text: sample.Text,
				Want: schemeLabel(sample.Want),
				Got:  schemeLabel(got),
			})
		}
	}
	report.Identifier = cr.Identifier()
	return report, nil
}

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newDetectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect [text...]",
		Short: "Detect the encoding scheme of texts",
		Long: `Detect the encoding scheme of each argument. Without arguments, every
line of the input is a text of its own.

Output is one line per text, the scheme name and the text separated by a tab.
This is the corpus format read by "lipi verify".`,
		Example: `  lipi detect dharma dhaarmik
  lipi detect --file texts.txt --encoding utf-16le
  echo 'kfzRa' | lipi detect --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			d, err := s.detector()
			if err != nil {
				return err
			}
			texts, err := readTexts(cmd, s, args)
			if err != nil {
				return err
			}
			jsonOut, _ := cmd.Flags().GetBool("json")
			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, text := range texts {
				scheme := schemeLabel(d.Detect(text))
				if jsonOut {
					if err := enc.Encode(map[string]string{"text": text, "scheme": scheme}); err != nil {
						return err
					}
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", scheme, text)
			}
			return nil
		},
	}
	addInputFlags(cmd)
	return cmd
}

func newCandidatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "candidates [text...]",
		Short: "List every scheme with evidence in texts",
		Long: `List, for each text, every scheme the text shows evidence of. The
detected scheme is always one of them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			d, err := s.detector()
			if err != nil {
				return err
			}
			texts, err := readTexts(cmd, s, args)
			if err != nil {
				return err
			}
			jsonOut, _ := cmd.Flags().GetBool("json")
			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, text := range texts {
				set := d.Candidates(text)
				if jsonOut {
					names := make([]string, 0, set.Len())
					for _, scheme := range set.Schemes() {
						names = append(names, schemeLabel(scheme))
					}
					if err := enc.Encode(map[string]any{"text": text, "candidates": names}); err != nil {
						return err
					}
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", set, text)
			}
			return nil
		},
	}
	addInputFlags(cmd)
	return cmd
}

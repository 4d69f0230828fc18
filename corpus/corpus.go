/*
Package corpus reads labeled text samples for scheme detection.

A corpus file is line-oriented. Every sample line starts with a scheme name
(as accepted by lipi.ParseScheme, "none" for texts without a scheme),
followed by whitespace and the sample text:

	% comment lines start with a percent sign
	\message{Bhagavad Gita 1.1, various encodings}
	devanagari  धर्मक्षेत्रे कुरुक्षेत्रे
	iast        dharmakṣetre kurukṣetre
	slp1        Darmakzetre kurukzetre
	none        1.1

Empty lines are skipped. Leading whitespace of the text is dropped, trailing
whitespace is kept.
*/
package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/lipi"
)

// Sample is a text labeled with the scheme it is expected to be detected as.
type Sample struct {
	Line int         // line number in the corpus, 1-based
	Want lipi.Scheme // expected scheme
	Text string
}

// ParseError reports a malformed corpus line.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("corpus line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

var errMissingText = errors.New("sample has no text")

// Reader streams samples from a corpus.
type Reader struct {
	scanner    *bufio.Scanner
	identifier string
	line       int
}

// NewReader creates a Reader for a corpus source.
func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Identifier returns the text of the last \message{…} line read, if any.
func (r *Reader) Identifier() string {
	return r.identifier
}

// Next returns the next sample. It returns io.EOF when exhausted.
func (r *Reader) Next() (Sample, error) {
	for r.scanner.Scan() {
		r.line++
		line := r.scanner.Text()
		if strings.HasPrefix(line, `\message{`) && strings.HasSuffix(line, "}") {
			r.identifier = line[9 : len(line)-1]
			continue
		}
		if strings.HasPrefix(line, "%") || strings.TrimSpace(line) == "" {
			continue
		}
		return r.decodeSampleLine(line)
	}
	if err := r.scanner.Err(); err != nil {
		return Sample{}, err
	}
	return Sample{}, io.EOF
}

func (r *Reader) decodeSampleLine(line string) (Sample, error) {
	line = strings.TrimLeft(line, " \t")
	cut := strings.IndexAny(line, " \t")
	if cut < 0 {
		return Sample{}, &ParseError{Line: r.line, Err: errMissingText}
	}
	scheme, err := lipi.ParseScheme(line[:cut])
	if err != nil {
		return Sample{}, &ParseError{Line: r.line, Err: err}
	}
	text := strings.TrimLeft(line[cut:], " \t")
	if text == "" {
		return Sample{}, &ParseError{Line: r.line, Err: errMissingText}
	}
	return Sample{Line: r.line, Want: scheme, Text: text}, nil
}

// Load reads all samples of a corpus.
func Load(reader io.Reader) ([]Sample, error) {
	r := NewReader(reader)
	var samples []Sample
	for {
		s, err := r.Next()
		if err == io.EOF {
			return samples, nil
		}
		if err != nil {
			return samples, err
		}
		samples = append(samples, s)
	}
}

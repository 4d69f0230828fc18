package lipi

import (
	"sync"
	"testing"
)

func TestDetectScenarios(t *testing.T) {
	tests := []struct {
		text string
		want Scheme
	}{
		{text: "धर्म", want: Devanagari},
		{text: "dharma", want: HarvardKyoto},
		{text: "dharma##comment##", want: HarvardKyoto},
		{text: "dharma\\##", want: HarvardKyoto},
		{text: "dhaarmik", want: ITRANS},
		{text: "dharma.h", want: Velthuis},
		{text: "dharmah\u0323", want: IAST},
		{text: "dharmaḥ", want: IAST},
		{text: "dharmaḥ dēva", want: Kolkata},
		{text: "", want: None},
	}
	for _, tt := range tests {
		if got := Detect(tt.text); got != tt.want {
			t.Errorf("Detect(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestDetectRomanizations(t *testing.T) {
	tests := []struct {
		text string
		want Scheme
	}{
		{text: "Śiva", want: IAST},
		{text: "śiva", want: IAST},
		{text: "kṛṣṇa", want: IAST},
		{text: "saṃskṛtam", want: IAST},
		{text: "dēvaḥ", want: Kolkata},
		{text: "dēva", want: Kolkata},
		{text: "rŌma", want: Kolkata},
		{text: "dharmakShetre kurukShetre", want: ITRANS},
		{text: "chhandas", want: ITRANS},
		{text: "RRiShi", want: ITRANS},
		{text: "rAmaH .a", want: ITRANS},
		{text: "Darmakzetre kurukzetre", want: SLP1},
		{text: "kfzRa", want: SLP1},
		{text: "SaNkara", want: SLP1},
		{text: "devEH", want: SLP1},
		{text: "sa.msk.rta", want: Velthuis},
		{text: "de~sa", want: Velthuis},
		{text: `"nkara`, want: Velthuis},
		{text: "j~nAna", want: ITRANS},
		{text: "puuja", want: ITRANS},
		{text: "kRSNa", want: HarvardKyoto},
		{text: "rAmaH", want: HarvardKyoto},
		{text: "123 456", want: None},
		{text: "Ωμέγα", want: None},
	}
	for _, tt := range tests {
		if got := Detect(tt.text); got != tt.want {
			t.Errorf("Detect(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestDetectBrahmicPrecedence(t *testing.T) {
	tests := []struct {
		text string
		want Scheme
	}{
		{text: "dharma.h धर्म", want: Devanagari},
		{text: "dharmaḥ dēva ধর্ম", want: Bengali},
		{text: "chhandas ਧਰਮ", want: Gurmukhi},
		{text: "ધર્મ kfzRa", want: Gujarati},
		{text: "ଧର୍ମ", want: Oriya},
		{text: "தர்மம்", want: Tamil},
		{text: "ధర్మ", want: Telugu},
		{text: "ಧರ್ಮ", want: Kannada},
		{text: "ധർമ്മം", want: Malayalam},
		{text: "ध ধ", want: Devanagari}, // first native code point decides
	}
	for _, tt := range tests {
		if got := Detect(tt.text); got != tt.want {
			t.Errorf("Detect(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestDetectUnassignedCodePoints(t *testing.T) {
	// U+0984 and U+0A00 are unassigned but lie inside the Bengali and Gurmukhi
	// blocks. They count as native text, and the scan stops there.
	if got := Detect("\u0984"); got != Bengali {
		t.Fatalf("U+0984 should detect as Bengali, is %q", got)
	}
	if got := Detect("dharma \u0a00 धर्म"); got != Gurmukhi {
		t.Fatalf("U+0A00 should detect as Gurmukhi, is %q", got)
	}
	if got := Detect("\u0d80"); got != None {
		t.Fatalf("U+0D80 is outside the Brahmic range, got %q", got)
	}
}

func TestDetectControlMarkupInvisible(t *testing.T) {
	tests := []struct {
		marked, plain string
	}{
		{marked: "dharma##aa##", plain: "dharma"},
		{marked: "dharma{#.h#}", plain: "dharma"},
		{marked: "##धर्म##dharma", plain: "dharma"},
		{marked: "{#kfzRa#}dhaarmik", plain: "dhaarmik"},
		{marked: "de\\##va", plain: "deva"},
		{marked: "##a\nb##kRSNa", plain: "kRSNa"},
	}
	for _, tt := range tests {
		if got, want := Detect(tt.marked), Detect(tt.plain); got != want {
			t.Errorf("Detect(%q) = %q, want %q as for %q", tt.marked, got, want, tt.plain)
		}
	}
}

func TestDetectEscapedSigilDoesNotOpenBlock(t *testing.T) {
	if got := Detect(`\##aa`); got != ITRANS {
		t.Fatalf(`\##aa should keep "aa" and detect as ITRANS, is %q`, got)
	}
	if got := Detect(`##aa`); got != None {
		t.Fatalf(`unterminated block ##aa should be discarded, got %q`, got)
	}
}

func TestDetectDeterministic(t *testing.T) {
	texts := []string{"dharma", "dhaarmik", "धर्म", "dēva", "", "sa.msk.rta"}
	for _, text := range texts {
		first := Detect(text)
		for i := 0; i < 5; i++ {
			if got := Detect(text); got != first {
				t.Fatalf("Detect(%q) not deterministic: %q vs %q", text, first, got)
			}
		}
	}
}

func TestDetectConcurrent(t *testing.T) {
	texts := map[string]Scheme{
		"dharma":     HarvardKyoto,
		"dhaarmik":   ITRANS,
		"धर्म":       Devanagari,
		"kfzRa":      SLP1,
		"sa.msk.rta": Velthuis,
		"dēva":       Kolkata,
	}
	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				for text, want := range texts {
					if got := Detect(text); got != want {
						errs <- text
						return
					}
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for text := range errs {
		t.Errorf("concurrent Detect(%q) returned a wrong scheme", text)
	}
}

func TestCandidates(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{text: "dhaarmik", want: "{itrans velthuis hk}"},
		{text: "धर्म dharma.h", want: "{devanagari}"},
		{text: "dēva", want: "{kolkata hk}"},
		{text: "sa.msk.rta", want: "{velthuis hk}"},
		{text: "", want: "{}"},
		{text: "123", want: "{}"},
	}
	for _, tt := range tests {
		if got := Candidates(tt.text).String(); got != tt.want {
			t.Errorf("Candidates(%q) = %s, want %s", tt.text, got, tt.want)
		}
	}
}

func TestCandidatesContainDetection(t *testing.T) {
	texts := []string{"dharma", "dhaarmik", "chhandas", "kfzRa", "de~sa", "Śiva", "dēva", "ಧರ್ಮ"}
	for _, text := range texts {
		scheme := Detect(text)
		if !Candidates(text).Contains(scheme) {
			t.Errorf("Candidates(%q) = %s does not contain %q", text, Candidates(text), scheme)
		}
	}
}

func TestDetectorDefaults(t *testing.T) {
	var zero Detector
	if got := zero.Detect("dharma"); got != HarvardKyoto {
		t.Fatalf("zero Detector should behave like Detect, got %q", got)
	}
	if got := zero.Detect("123"); got != None {
		t.Fatalf("zero Detector should report None, got %q", got)
	}
	d := NewDetector(WithDefault(IAST))
	if got := d.Detect("123"); got != IAST {
		t.Fatalf("expected fallback to IAST, got %q", got)
	}
	if got := d.Detect("dhaarmik"); got != ITRANS {
		t.Fatalf("fallback must not override a match, got %q", got)
	}
}

func TestDetectorSkipSGML(t *testing.T) {
	text := `<span class="x">dharma</span>`
	if got := Detect(text); got != SLP1 { // 'x' is an SLP1 letter
		t.Fatalf("without SGML skipping expected SLP1, got %q", got)
	}
	d := NewDetector(WithSkipSGML(true))
	if got := d.Detect(text); got != HarvardKyoto {
		t.Fatalf("with SGML skipping expected HarvardKyoto, got %q", got)
	}
	if got := d.Candidates(text).String(); got != "{hk}" {
		t.Fatalf("with SGML skipping expected candidates {hk}, got %s", got)
	}
}

var benchmarkTexts = map[string]string{
	"devanagari": "नानाशास्त्रसुभाषितामृतरसैः श्रोत्रोत्सवं कुर्वतां येषां यान्ति दिनानि " +
		"पण्डितजनव्यायामखिन्नात्मनाम् तेषां जन्म च जीवितं च सुकृतं तैर् एव भूर् ",
	"iast": "nānāśāstrasubhāṣitāmṛtarasaiḥ śrotrotsavaṃ kurvatāṃ yeṣāṃ yānti dinani " +
		"paṇḍitajanavyāyāmakhinnātmanām teṣāṃ janma ca jīvitaṃ ca sukṛtaṃ tair eva bhūr ",
	"hk": "nAnAzAstrasubhASitAmRtarasaiH zrotrotsavaM kurvatAM yeSAM yAnti dinAni " +
		"paNDitajanavyAyAmakhinnAtmanAm teSAM janma ca jIvitaM ca sukRtaM tair eva bhUr ",
}

func BenchmarkDetect(b *testing.B) {
	for name, text := range benchmarkTexts {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				Detect(text)
			}
		})
	}
}

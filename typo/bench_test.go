package typo

import "testing"

func BenchmarkRewrite(b *testing.B) {
	enzyme := MustParseEnzyme("rpy-ina-rpu-mvr-int-mvl-cut-swi-cop")
	strand := MustParseStrand("TAGATCCAGTCCACATCGA")
	b.ResetTimer()
	for b.Loop() {
		Rewrite(enzyme, strand)
	}
}

func BenchmarkTranslate(b *testing.B) {
	strand := MustParseStrand("CAAAGAGAATCCTCTTTGATTAGATCCAGTCCACATCGA")
	b.ResetTimer()
	for b.Loop() {
		Translate(strand)
	}
}

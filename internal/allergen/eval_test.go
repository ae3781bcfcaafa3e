package allergen

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func Test_rocAUC(t *testing.T) {
	type args struct {
		pos []float64
		neg []float64
	}
	tests := []struct {
		name string
		args args
		want float64
	}{
		{
			"perfect separation",
			args{[]float64{0.9, 0.8}, []float64{0.2, 0.1}},
			1.0,
		},
		{
			"inverted separation",
			args{[]float64{0.1}, []float64{0.9}},
			0.0,
		},
		{
			"ties count half",
			args{[]float64{0.9, 0.8}, []float64{0.5, 0.8}},
			0.875,
		},
		{
			"empty side",
			args{nil, []float64{0.5}},
			0.0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rocAUC(tt.args.pos, tt.args.neg); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("rocAUC() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_Evaluate(t *testing.T) {
	posDir := t.TempDir()
	negDir := t.TempDir()

	writePair := func(dir, name, query, target string) {
		contents := ">query\n" + query + "\n>target\n" + target + "\n"
		if err := os.WriteFile(filepath.Join(dir, name), []byte(contents), 0644); err != nil {
			t.Fatal(err)
		}
	}

	// a 0.9-identity pair scores well above the 0.35 threshold
	writePair(posDir, "pair1.fasta", toyQuery, toyTarget)
	// an unrelated pair finds no window above threshold and scores 0.0
	writePair(negDir, "pair1.fasta", toyQuery, strings.Repeat("G", 100))

	// a file that is not a pair is skipped, not scored
	malformed := ">a\n" + toyQuery + "\n>b\n" + toyTarget + "\n>c\n" + toyTarget + "\n"
	if err := os.WriteFile(filepath.Join(negDir, "triple.fasta"), []byte(malformed), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := Evaluate(posDir, negDir, nil, false, testConfig())
	if err != nil {
		t.Fatal(err)
	}

	if m.Positives != 1 || m.Negatives != 1 {
		t.Fatalf("failed, benchmark sizes are %d/%d, should be 1/1", m.Positives, m.Negatives)
	}
	if m.Threshold != 0.35 {
		t.Errorf("failed, threshold is %f", m.Threshold)
	}
	if m.Accuracy != 1.0 || m.Precision != 1.0 || m.Recall != 1.0 || m.F1 != 1.0 {
		t.Errorf("failed, metrics are %+v, should all be 1.0", m)
	}
	if m.AUC != 1.0 {
		t.Errorf("failed, AUC is %f, should be 1.0", m.AUC)
	}
}

func Test_Evaluate_emptyDirs(t *testing.T) {
	if _, err := Evaluate(t.TempDir(), t.TempDir(), nil, false, testConfig()); err == nil {
		t.Error("failed, expected an error for benchmark directories without pairs")
	}
}

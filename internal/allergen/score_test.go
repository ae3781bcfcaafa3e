package allergen

import (
	"math"
	"strings"
	"testing"

	"github.com/shenliangjun042510/allergen/config"
)

// testConfig returns the stock scan parameters without going through viper.
func testConfig() *config.Config {
	return &config.Config{
		WindowWidth:       80,
		IdentityThreshold: 0.35,
		EpitopeFactor:     0.8,
		EpitopeMinLength:  6,
		KmerLength:        8,
		ExactBonus:        0.1,
		Threads:           2,
	}
}

// toyRecord is a reference entry whose best window identity against
// toyQuery is 0.9 (see window_test.go).
func toyRecord() Record {
	return NewRecord(Sequence{
		ID:          "tr|D3K177|D3K177_ARAHY",
		Description: "tr|D3K177|D3K177_ARAHY Profilin OS=Arachis hypogaea OX=3818 PE=1 SV=1",
		Seq:         toyTarget,
	})
}

func toyQuerySeq() Sequence {
	return Sequence{
		ID:          "sp|Q9SQI9|PROF_ARAHY",
		Description: "sp|Q9SQI9|PROF_ARAHY Profilin OS=Arachis hypogaea OX=3818 PE=1 SV=1",
		Seq:         toyQuery,
	}
}

func Test_scoreTarget(t *testing.T) {
	conf := testConfig()
	query := toyQuerySeq()

	r := scoreTarget(query, toyRecord(), nil, false, conf)
	if r == nil {
		t.Fatal("failed, expected a match above threshold")
	}

	if math.Abs(r.Identity-0.9) > 1e-9 {
		t.Errorf("failed, identity is %f, should be 0.9", r.Identity)
	}
	if r.AdjustedIdentity != r.Identity {
		t.Errorf("failed, identity was adjusted without epitope mode: %f", r.AdjustedIdentity)
	}
	if !r.HasKmerMatch {
		t.Error("failed, the sequences share exact 8-mers")
	}
	if math.Abs(r.Score-1.0) > 1e-9 {
		t.Errorf("failed, score is %f, should be 1.0 (identity + bonus)", r.Score)
	}
	if r.Mode != ModeGlobal {
		t.Errorf("failed, match mode is %s, should be %s", r.Mode, ModeGlobal)
	}
	if r.Window != toyQuery[:80] {
		t.Errorf("failed, best window is %q", r.Window)
	}
	if r.Accession != "D3K177" {
		t.Errorf("failed, accession is %s", r.Accession)
	}
	if r.Organism != "Arachis hypogaea" {
		t.Errorf("failed, organism is %s", r.Organism)
	}
	if r.QueryID != query.ID {
		t.Errorf("failed, query id is %s", r.QueryID)
	}
	if r.KmerHits < 1 {
		t.Errorf("failed, k-mer hit count is %d", r.KmerHits)
	}
}

func Test_scoreTarget_selfMatch(t *testing.T) {
	conf := testConfig()
	query := toyQuerySeq()

	self := NewRecord(Sequence{
		ID:          "sp|DECOY1|DECOY",
		Description: "sp|DECOY1|DECOY Decoy OS=Arachis hypogaea",
		Seq:         toyQuery, // byte-identical residues
	})

	if r := scoreTarget(query, self, nil, false, conf); r != nil {
		t.Errorf("failed, self-match produced a result: %+v", r)
	}
}

func Test_scoreTarget_belowThreshold(t *testing.T) {
	conf := testConfig()
	conf.IdentityThreshold = 0.95

	if r := scoreTarget(toyQuerySeq(), toyRecord(), nil, false, conf); r != nil {
		t.Errorf("failed, a 0.9-identity match survived a 0.95 threshold: %+v", r)
	}
}

func Test_scoreTarget_windowWiderThanQuery(t *testing.T) {
	conf := testConfig()
	conf.WindowWidth = 200

	if r := scoreTarget(toyQuerySeq(), toyRecord(), nil, false, conf); r != nil {
		t.Errorf("failed, an oversized window produced a result: %+v", r)
	}
}

func Test_scoreTarget_epitopeAdjustment(t *testing.T) {
	conf := testConfig()
	query := toyQuerySeq()
	rec := toyRecord()

	// an epitope inside the best window preserves full confidence
	covered := NewEpitopeCatalog(map[string][]string{
		rec.Accession: {toyQuery[10:20]},
	})
	// an epitope outside the best window (or none at all) is penalized
	uncovered := NewEpitopeCatalog(map[string][]string{
		rec.Accession: {"GGGGGGGGGG"},
	})

	hit := scoreTarget(query, rec, covered, true, conf)
	miss := scoreTarget(query, rec, uncovered, true, conf)
	uncatalogued := scoreTarget(query, rec, nil, true, conf)
	off := scoreTarget(query, rec, covered, false, conf)

	if hit == nil || miss == nil || uncatalogued == nil || off == nil {
		t.Fatal("failed, all four scans should produce results")
	}

	if !hit.WindowContainsEpitope {
		t.Error("failed, the covered window was not flagged")
	}
	if hit.AdjustedIdentity != hit.Identity {
		t.Errorf("failed, a covered window was penalized: %f", hit.AdjustedIdentity)
	}
	if math.Abs(miss.AdjustedIdentity-miss.Identity*conf.EpitopeFactor) > 1e-9 {
		t.Errorf("failed, an uncovered window kept %f, should be %f",
			miss.AdjustedIdentity, miss.Identity*conf.EpitopeFactor)
	}
	if miss.Score >= hit.Score {
		t.Errorf("failed, covered %f and uncovered %f scores should differ", hit.Score, miss.Score)
	}
	if uncatalogued.Score != miss.Score {
		t.Errorf("failed, a missing catalog entry should score like an uncovered window")
	}
	if off.Score != hit.Score || off.AdjustedIdentity != off.Identity {
		t.Errorf("failed, scores should be unadjusted when epitope mode is off")
	}

	if hit.Mode != ModeEpitopeAdjusted || off.Mode != ModeGlobal {
		t.Errorf("failed, match modes are %s and %s", hit.Mode, off.Mode)
	}
}

func Test_scoreTarget_exactKmerBonus(t *testing.T) {
	conf := testConfig()
	conf.WindowWidth = 10
	conf.IdentityThreshold = 0.1

	query := Sequence{ID: "q", Seq: "MKTAYIAKQRQISFVKSHFSRQ"}

	// the target embeds the query's first 8 residues verbatim
	with := NewRecord(Sequence{ID: "t1", Seq: "GGGGMKTAYIAKGGGG"})
	r := scoreTarget(query, with, nil, false, conf)
	if r == nil {
		t.Fatal("failed, expected a match")
	}
	if !r.HasKmerMatch {
		t.Error("failed, MKTAYIAK occurs verbatim in the target")
	}
	if math.Abs(r.Score-(r.AdjustedIdentity+conf.ExactBonus)) > 1e-9 {
		t.Errorf("failed, score %f should carry the %f bonus", r.Score, conf.ExactBonus)
	}

	// a target whose shared runs are broken up every 7 residues gets no bonus
	without := NewRecord(Sequence{ID: "t2", Seq: "MKTAYICKQRQISCVKSHFSCQ"})
	r2 := scoreTarget(query, without, nil, false, conf)
	if r2 == nil {
		t.Fatal("failed, expected a match")
	}
	if r2.HasKmerMatch {
		t.Error("failed, no query 8-mer occurs in the target")
	}
	if math.Abs(r2.Score-r2.AdjustedIdentity) > 1e-9 {
		t.Errorf("failed, score %f should equal adjusted identity %f", r2.Score, r2.AdjustedIdentity)
	}
}

func Test_countHits(t *testing.T) {
	type args struct {
		sub string
		s   string
	}
	tests := []struct {
		name string
		args args
		want int
	}{
		{
			"overlapping occurrences",
			args{"AA", "AAAA"},
			3,
		},
		{
			"no occurrences",
			args{"GG", "AAAA"},
			0,
		},
		{
			"single occurrence",
			args{"KTA", "MKTAYIAK"},
			1,
		},
		{
			"empty substring",
			args{"", "MKTAYIAK"},
			0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := countHits(tt.args.sub, tt.args.s); got != tt.want {
				t.Errorf("countHits() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_kmerHelpers(t *testing.T) {
	mers := kmerSet("MKTAYIAK", 8)
	if len(mers) != 1 {
		t.Errorf("failed, 8-residue sequence has %d 8-mers, should have 1", len(mers))
	}

	if hasExactKmer("MKTAYIAK", "GGMKTAYIAKGG", 8) != true {
		t.Error("failed, embedded 8-mer not found")
	}
	if hasExactKmer("MKTAYIAK", "GGMKTAYIGG", 8) != false {
		t.Error("failed, found an 8-mer that is not there")
	}

	if got := kmerHits("AAAAAAAAA", strings.Repeat("A", 10), 8); got != 3 {
		// one distinct 8-mer, three overlapping occurrences
		t.Errorf("kmerHits() = %d, want 3", got)
	}
}

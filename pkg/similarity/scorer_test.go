package similarity

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeEmbedder struct {
	vectors map[string][]float32
	err     error
}

func (f *fakeEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	if v, ok := f.vectors[text]; ok {
		return v, nil
	}
	return []float32{1, 0, 0}, nil
}

func TestPreprocess(t *testing.T) {
	cases := map[string]string{
		"<b>Senior</b> Developer":   "senior developer",
		"Python,  Docker!   ":       "python, docker!",
		"skills: ###noise### AWS":   "skills: noise aws",
		"Kỹ sư phần mềm":            "kỹ sư phần mềm",
		"emoji \U0001F600 inside":   "emoji inside",
		"":                          "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Preprocess(in), "input %q", in)
	}
}

func TestScoreIdenticalTextsNearMax(t *testing.T) {
	s := NewScorer(&fakeEmbedder{vectors: map[string][]float32{
		"senior go developer": {0.3, 0.5, 0.2},
	}})
	got := s.Score(context.Background(), "Senior Go Developer", "senior   GO developer")
	assert.InDelta(t, 1.0, got, 1e-9)
}

func TestScoreBounds(t *testing.T) {
	s := NewScorer(&fakeEmbedder{vectors: map[string][]float32{
		"a": {1, 0, 0},
		"b": {0, 1, 0},
		"c": {-1, 0, 0},
	}})
	ctx := context.Background()

	assert.Equal(t, 0.0, s.Score(ctx, "a", "b"), "orthogonal vectors")
	// отрицательный косинус прижимается к нулю
	assert.Equal(t, 0.0, s.Score(ctx, "a", "c"))

	got := s.Score(ctx, "a", "a")
	assert.GreaterOrEqual(t, got, 0.0)
	assert.LessOrEqual(t, got, 1.0)
}

func TestScoreRounding(t *testing.T) {
	// cos = 0.123456... должен прийти с 4 знаками
	s := NewScorer(&fakeEmbedder{vectors: map[string][]float32{
		"a": {1, 0},
		"b": {0.123456, 0.992354},
	}})
	got := s.Score(context.Background(), "a", "b")
	assert.Equal(t, 0.1235, got)
}

func TestScoreDegradedModes(t *testing.T) {
	ctx := context.Background()

	var nilScorer *Scorer
	assert.Equal(t, 0.0, nilScorer.Score(ctx, "a", "b"))

	assert.Equal(t, 0.0, NewScorer(nil).Score(ctx, "a", "b"))
	assert.False(t, NewScorer(nil).Available())

	failing := NewScorer(&fakeEmbedder{err: errors.New("model not loaded")})
	assert.Equal(t, 0.0, failing.Score(ctx, "a", "b"))

	// пустые тексты не падают
	okScorer := NewScorer(&fakeEmbedder{})
	got := okScorer.Score(ctx, "", "")
	assert.GreaterOrEqual(t, got, 0.0)
	assert.LessOrEqual(t, got, 1.0)
}

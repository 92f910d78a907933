package classify

import (
	"github.com/schollz/progressbar/v3"

	"segment-iq/internal/dataset"
)

// progressThreshold is the batch size above which scoring shows a progress
// bar on stderr.
const progressThreshold = 1000

// Predictor applies a fitted encoder and model to prospect records lacking a
// segment label. Output order matches input order.
type Predictor struct {
	Encoder      *Encoder
	Model        *Logistic
	ShowProgress bool
}

// Score predicts one segment per prospect row.
func (p *Predictor) Score(t *dataset.Table) ([]int, error) {
	encoded, err := p.Encoder.Transform(t, nil)
	if err != nil {
		return nil, err
	}

	var bar *progressbar.ProgressBar
	if p.ShowProgress && len(encoded) >= progressThreshold {
		bar = progressbar.Default(int64(len(encoded)), "scoring")
	}

	out := make([]int, len(encoded))
	for i, x := range encoded {
		proba, err := p.Model.PredictProba(x)
		if err != nil {
			return nil, err
		}
		best := 0
		for c, prob := range proba {
			if prob > proba[best] {
				best = c
			}
		}
		out[i] = p.Model.Classes()[best]
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	return out, nil
}

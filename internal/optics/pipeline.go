package optics

import "github.com/developeragencia/visaomais/internal/entity"

// Gate rejection reasons.
const (
	ReasonLowQuality  = "qualidade de imagem insuficiente"
	ReasonImplausible = "medidas fora das faixas anatômicas"
)

// Pipeline runs both computation stages over one submitted photo and takes
// the gate decision. The stages stay independently callable; the pipeline
// only sequences and combines them.
type Pipeline struct {
	engine *Engine
	scorer *Scorer
}

func NewPipeline(engine *Engine, scorer *Scorer) *Pipeline {
	return &Pipeline{engine: engine, scorer: scorer}
}

// Process scores the pixel buffer, measures the landmarks and combines both
// into one report. A measurement is rejected when the image grades low or
// any distance falls outside its anatomical range; warned-but-plausible
// results pass the gate and carry their warnings out.
func (p *Pipeline) Process(pixels []byte, width, height int, lm entity.LandmarkSet) (entity.MeasurementReport, error) {
	quality := p.scorer.Score(pixels, width, height, &lm)

	measurement, err := p.engine.Measure(lm, width, height)
	if err != nil {
		return entity.MeasurementReport{}, err
	}

	report := entity.MeasurementReport{
		Measurement: measurement,
		Quality:     quality,
		Accepted:    true,
	}

	switch {
	case quality.Quality == entity.QualityLow:
		report.Accepted = false
		report.Reason = ReasonLowQuality
	case !p.engine.WithinPlausibleRanges(measurement):
		report.Accepted = false
		report.Reason = ReasonImplausible
	}

	return report, nil
}

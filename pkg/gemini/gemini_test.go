package gemini

import "testing"

func TestParseLandmarkResponse(t *testing.T) {
	valid := `{
		"left_eye": {"x": 312.5, "y": 420.0},
		"right_eye": {"x": 488.0, "y": 418.5},
		"nose": {"x": 400.0, "y": 510.0},
		"confidence": 0.93
	}`

	lm, err := parseLandmarkResponse(valid)
	if err != nil {
		t.Fatalf("parseLandmarkResponse returned error: %v", err)
	}
	if lm.LeftEye.X != 312.5 || lm.LeftEye.Y != 420.0 {
		t.Errorf("left eye = %+v, want (312.5, 420.0)", lm.LeftEye)
	}
	if lm.Confidence != 0.93 {
		t.Errorf("confidence = %v, want 0.93", lm.Confidence)
	}
}

func TestParseLandmarkResponseWithSurroundingText(t *testing.T) {
	wrapped := "Aqui estao as coordenadas:\n```json\n" +
		`{"left_eye": {"x": 1, "y": 2}, "right_eye": {"x": 3, "y": 4}, "nose": {"x": 5, "y": 6}, "confidence": 0.5}` +
		"\n```"

	lm, err := parseLandmarkResponse(wrapped)
	if err != nil {
		t.Fatalf("parseLandmarkResponse returned error: %v", err)
	}
	if lm.Nose.X != 5 || lm.Nose.Y != 6 {
		t.Errorf("nose = %+v, want (5, 6)", lm.Nose)
	}
}

func TestParseLandmarkResponseErrors(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"no json", "sem coordenadas"},
		{"missing left eye", `{"right_eye": {"x": 3, "y": 4}, "nose": {"x": 5, "y": 6}, "confidence": 0.5}`},
		{"missing coordinate", `{"left_eye": {"x": 1}, "right_eye": {"x": 3, "y": 4}, "nose": {"x": 5, "y": 6}, "confidence": 0.5}`},
		{"missing confidence", `{"left_eye": {"x": 1, "y": 2}, "right_eye": {"x": 3, "y": 4}, "nose": {"x": 5, "y": 6}}`},
		{"confidence out of range", `{"left_eye": {"x": 1, "y": 2}, "right_eye": {"x": 3, "y": 4}, "nose": {"x": 5, "y": 6}, "confidence": 1.5}`},
		{"malformed json", `{"left_eye": {`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseLandmarkResponse(tt.response); err == nil {
				t.Errorf("parseLandmarkResponse(%q) expected error, got nil", tt.response)
			}
		})
	}
}

package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"math"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/developeragencia/visaomais/internal/entity"
	"github.com/developeragencia/visaomais/pkg/geometry"
)

type IGemini interface {
	AnalyzeImage(ctx context.Context, base64Image string, prompt string) (string, error)
	EstimateLandmarks(ctx context.Context, base64Image string) (entity.LandmarkSet, error)
}

type geminiClient struct {
	apiKey    string
	modelName string
	client    *genai.Client
}

func NewGeminiClient() (IGemini, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")

	modelName := os.Getenv("GEMINI_MODEL_NAME")
	if apiKey == "" {
		return nil, errors.New("gemini API key is required")
	}

	if modelName == "" {
		modelName = "gemini-pro-vision"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return &geminiClient{
		apiKey:    apiKey,
		modelName: modelName,
		client:    client,
	}, nil
}

func (g *geminiClient) AnalyzeImage(ctx context.Context, base64Image string, prompt string) (string, error) {
	imgData, err := base64.StdEncoding.DecodeString(base64Image)
	if err != nil {
		return "", errors.New("invalid base64 image data")
	}

	model := g.client.GenerativeModel(g.modelName)

	if prompt == "" {
		prompt = "Analyze this image and provide details in JSON format."
	}

	img := genai.ImageData("image/jpeg", imgData)
	res, err := model.GenerateContent(ctx, genai.Text(prompt), img)
	if err != nil {
		return "", err
	}

	if len(res.Candidates) == 0 || len(res.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("no response from Gemini API")
	}

	response := res.Candidates[0].Content.Parts[0]
	text, ok := response.(genai.Text)
	if !ok {
		return "", errors.New("unexpected response format from Gemini API")
	}

	return string(text), nil
}

// EstimateLandmarks asks the vision model for the pupil centers and nose
// bridge of the single face in the image.
func (g *geminiClient) EstimateLandmarks(ctx context.Context, base64Image string) (entity.LandmarkSet, error) {
	prompt := `
	Localize na imagem o rosto da pessoa e retorne as coordenadas, em pixels,
	do centro da pupila esquerda, do centro da pupila direita e do centro da
	ponte nasal, junto com a confiança da detecção entre 0 e 1.
	Formato de saída desejado:
	{
		"left_eye": {"x": 312.5, "y": 420.0},
		"right_eye": {"x": 488.0, "y": 418.5},
		"nose": {"x": 400.0, "y": 510.0},
		"confidence": 0.93
	}
	Responda APENAS com o JSON, sem nenhum texto adicional.
	`

	result, err := g.AnalyzeImage(ctx, base64Image, prompt)
	if err != nil {
		return entity.LandmarkSet{}, err
	}

	return parseLandmarkResponse(result)
}

// landmarkResponse uses pointers so a missing field is distinguishable from
// a zero value: the model output is parsed strictly, never defaulted.
type landmarkResponse struct {
	LeftEye    *pointResponse `json:"left_eye"`
	RightEye   *pointResponse `json:"right_eye"`
	Nose       *pointResponse `json:"nose"`
	Confidence *float64       `json:"confidence"`
}

type pointResponse struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

func parseLandmarkResponse(response string) (entity.LandmarkSet, error) {
	jsonStart := strings.Index(response, "{")
	jsonEnd := strings.LastIndex(response, "}")

	if jsonStart == -1 || jsonEnd == -1 || jsonEnd <= jsonStart {
		return entity.LandmarkSet{}, errors.New("cannot find valid JSON in response")
	}

	var parsed landmarkResponse
	if err := json.Unmarshal([]byte(response[jsonStart:jsonEnd+1]), &parsed); err != nil {
		return entity.LandmarkSet{}, err
	}

	leftEye, err := requirePoint("left_eye", parsed.LeftEye)
	if err != nil {
		return entity.LandmarkSet{}, err
	}
	rightEye, err := requirePoint("right_eye", parsed.RightEye)
	if err != nil {
		return entity.LandmarkSet{}, err
	}
	nose, err := requirePoint("nose", parsed.Nose)
	if err != nil {
		return entity.LandmarkSet{}, err
	}

	if parsed.Confidence == nil {
		return entity.LandmarkSet{}, errors.New("model response is missing confidence")
	}
	confidence := *parsed.Confidence
	if math.IsNaN(confidence) || confidence < 0 || confidence > 1 {
		return entity.LandmarkSet{}, errors.New("model confidence must be within [0,1]")
	}

	return entity.LandmarkSet{
		LeftEye:    leftEye,
		RightEye:   rightEye,
		Nose:       nose,
		Confidence: confidence,
	}, nil
}

func requirePoint(field string, p *pointResponse) (geometry.Point, error) {
	if p == nil || p.X == nil || p.Y == nil {
		return geometry.Point{}, errors.New("model response is missing " + field)
	}
	if math.IsNaN(*p.X) || math.IsInf(*p.X, 0) || math.IsNaN(*p.Y) || math.IsInf(*p.Y, 0) {
		return geometry.Point{}, errors.New("model returned non-finite coordinate for " + field)
	}
	return geometry.Point{X: *p.X, Y: *p.Y}, nil
}

func (g *geminiClient) Close() {
	if g.client != nil {
		g.client.Close()
	}
}

package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sachink160/multitool-client/internal/client/models"
)

func fieldMessages(t *testing.T, err error) map[string]string {
	t.Helper()
	var errs Errors
	require.True(t, errors.As(err, &errs), "expected validate.Errors, got %T", err)
	out := make(map[string]string, len(errs))
	for _, e := range errs {
		out[e.Field] = e.Message
	}
	return out
}

func TestStruct_Register(t *testing.T) {
	ok := models.RegisterRequest{
		Username: "alice",
		Fullname: "Alice A",
		Email:    "alice@example.com",
		UserType: "user",
		Password: "secret1",
	}
	require.NoError(t, Struct(ok))

	bad := ok
	bad.Email = "nope"
	bad.Password = "123"
	bad.Username = ""

	err := Struct(bad)
	require.ErrorIs(t, err, ErrInvalid)
	require.Equal(t, map[string]string{
		"email":    "Invalid email format",
		"password": "Must be at least 6 characters",
		"username": "This field is required",
	}, fieldMessages(t, err))
}

func TestStruct_PromptPlaceholder(t *testing.T) {
	err := Struct(models.DynamicPromptCreate{Name: "n", PromptTemplate: "Summarize this"})
	require.Equal(t, map[string]string{
		"prompt_template": "Must contain the {text} placeholder",
	}, fieldMessages(t, err))

	require.NoError(t, Struct(models.DynamicPromptCreate{Name: "n", PromptTemplate: "Summarize {text}"}))
}

func TestStruct_OptionalPointers(t *testing.T) {
	require.NoError(t, Struct(models.DynamicPromptUpdate{}))

	tmpl := "missing"
	err := Struct(models.DynamicPromptUpdate{PromptTemplate: &tmpl})
	require.ErrorIs(t, err, ErrInvalid)
}

func TestStruct_RequirementJSON(t *testing.T) {
	err := Struct(models.JobRequirementCreate{Title: "Go dev", RequirementJSON: "{not json"})
	require.Equal(t, map[string]string{"requirement_json": "Must be valid JSON"}, fieldMessages(t, err))

	require.NoError(t, Struct(models.JobRequirementCreate{Title: "Go dev", RequirementJSON: `{"skills":["go"]}`}))
}

func TestStruct_ImageBounds(t *testing.T) {
	req := models.DefaultImageRequest("a cat")
	require.NoError(t, Struct(req))

	req.Width = 100
	req.NumInferenceSteps = 0
	require.Equal(t, map[string]string{
		"width":               "Must be at least 256",
		"num_inference_steps": "Must be at least 1",
	}, fieldMessages(t, Struct(req)))
}

func TestStruct_QueryType(t *testing.T) {
	err := Struct(models.AskDocumentRequest{DocumentID: "d", Question: "q", QueryType: "poem"})
	require.Equal(t, map[string]string{
		"query_type": "Must be one of: question summarize action_items legal_issues",
	}, fieldMessages(t, err))
}

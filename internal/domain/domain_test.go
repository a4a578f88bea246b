package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalysisResultKeepsResponseOrder(t *testing.T) {
	var result AnalysisResult
	require.NoError(t, json.Unmarshal([]byte(`{"Summary":"short","Findings":"many","Appendix":"n/a"}`), &result))

	assert.Equal(t, 3, result.Len())
	assert.Equal(t, []string{"Summary", "Findings", "Appendix"}, result.Names())

	body, ok := result.Get("Findings")
	require.True(t, ok)
	assert.Equal(t, "many", body)

	encoded, err := json.Marshal(result)
	require.NoError(t, err)
	assert.Equal(t, `{"Summary":"short","Findings":"many","Appendix":"n/a"}`, string(encoded))
}

func TestAnalysisResultRejectsNonTextSections(t *testing.T) {
	var result AnalysisResult
	err := json.Unmarshal([]byte(`{"Summary":42}`), &result)
	require.Error(t, err)
}

func TestAnalysisResultZeroValue(t *testing.T) {
	var result AnalysisResult

	assert.Equal(t, 0, result.Len())
	assert.Empty(t, result.Sections())
	_, ok := result.Get("Summary")
	assert.False(t, ok)

	encoded, err := json.Marshal(result)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(encoded))
}

func TestNewAnalysisResultRepeatedNameKeepsFirstPosition(t *testing.T) {
	result := NewAnalysisResult(
		Section{Name: "Introduction", Body: "a"},
		Section{Name: "Results", Body: "b"},
		Section{Name: "Introduction", Body: "c"},
	)

	assert.Equal(t, []Section{
		{Name: "Introduction", Body: "c"},
		{Name: "Results", Body: "b"},
	}, result.Sections())
}

func TestDocumentValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doc     Document
		wantErr bool
	}{
		{name: "valid", doc: Document{Name: "paper.pdf", Data: []byte("%PDF-1.7")}},
		{name: "missing name", doc: Document{Data: []byte("%PDF-1.7")}, wantErr: true},
		{name: "nil data", doc: Document{Name: "paper.pdf"}, wantErr: true},
		{name: "empty data", doc: Document{Name: "paper.pdf", Data: []byte{}}, wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.doc.Validate()
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidDocument)
		})
	}
}

func TestUploadStateTransitions(t *testing.T) {
	tests := []struct {
		state     UploadState
		canSelect bool
		canSubmit bool
		wantLabel string
	}{
		{state: UploadIdle, canSelect: true, canSubmit: false, wantLabel: "no file"},
		{state: UploadFileSelected, canSelect: true, canSubmit: true, wantLabel: "ready to upload"},
		{state: UploadUploading, canSelect: false, canSubmit: false, wantLabel: "uploading"},
		{state: UploadUploaded, canSelect: true, canSubmit: false, wantLabel: "uploaded"},
		{state: UploadFailed, canSelect: true, canSubmit: true, wantLabel: "upload failed"},
	}

	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			assert.Equal(t, tt.canSelect, tt.state.CanSelect())
			assert.Equal(t, tt.canSubmit, tt.state.CanSubmit())
			assert.Equal(t, tt.wantLabel, tt.state.Label())
		})
	}
}

func TestRoleLabel(t *testing.T) {
	assert.Equal(t, "You", RoleUser.Label())
	assert.Equal(t, "System", RoleSystem.Label())
	assert.Equal(t, "bot", Role("bot").Label())
}

func TestTransportErrorWrapsOnce(t *testing.T) {
	cause := errors.New("connection refused")

	err := TransportError("submit document", cause)
	require.Error(t, err)
	assert.True(t, IsTransport(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "submit document: transport error: connection refused", err.Error())

	assert.Same(t, err, TransportError("outer", err))
	assert.NoError(t, TransportError("noop", nil))
}

func TestEventBlocking(t *testing.T) {
	assert.True(t, Event{Kind: EventUploadSucceeded}.Blocking())
	assert.True(t, Event{Kind: EventUploadFailed}.Blocking())
	assert.True(t, Event{Kind: EventAnalysisFailed}.Blocking())
	assert.False(t, Event{Kind: EventAnalysisReady}.Blocking())
	assert.False(t, Event{Kind: EventMessageAppended}.Blocking())
}

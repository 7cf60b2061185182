package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
)

func boolPtr(b bool) *bool { return &b }

func intPtr(n int) *int { return &n }

type fakeRecorder struct {
	events []model.GenerationEvent
	err    error
}

func (f *fakeRecorder) Record(_ context.Context, event *model.GenerationEvent) error {
	if f.err != nil {
		return f.err
	}
	event.ID = int64(len(f.events) + 1)
	f.events = append(f.events, *event)
	return nil
}

func TestGenerate_Defaults(t *testing.T) {
	svc := NewGeneratorService(crypto.DefaultOptions(), nil)

	resp, err := svc.Generate(context.Background(), model.GenerateRequest{})
	require.NoError(t, err)

	assert.Equal(t, 8, resp.Length)
	assert.Len(t, resp.Password, 8)
	assert.Empty(t, resp.Hash)
}

func TestGenerate_ConfiguredDefaults(t *testing.T) {
	defaults := crypto.Options{Length: 20, Uppercase: true, Lowercase: true}
	svc := NewGeneratorService(defaults, nil)

	resp, err := svc.Generate(context.Background(), model.GenerateRequest{})
	require.NoError(t, err)

	assert.Equal(t, 20, resp.Length)
	assert.False(t, strings.ContainsAny(resp.Password, crypto.NumberChars+crypto.SymbolChars),
		"password %q contains characters disabled by defaults", resp.Password)
}

func TestGenerate_CustomOptions(t *testing.T) {
	svc := NewGeneratorService(crypto.DefaultOptions(), nil)

	resp, err := svc.Generate(context.Background(), model.GenerateRequest{
		Length:    intPtr(16),
		Uppercase: boolPtr(false),
		Lowercase: boolPtr(false),
	})
	require.NoError(t, err)

	assert.Equal(t, 16, resp.Length)
	for _, c := range resp.Password {
		assert.Contains(t, crypto.NumberChars+crypto.SymbolChars, string(c))
	}
}

func TestGenerate_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		req  model.GenerateRequest
	}{
		{name: "zero length", req: model.GenerateRequest{Length: intPtr(0)}},
		{name: "length too long", req: model.GenerateRequest{Length: intPtr(100)}},
		{name: "negative length", req: model.GenerateRequest{Length: intPtr(-1)}},
		{
			name: "no character types",
			req: model.GenerateRequest{
				Uppercase: boolPtr(false),
				Lowercase: boolPtr(false),
				Numbers:   boolPtr(false),
				Symbols:   boolPtr(false),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := &fakeRecorder{}
			svc := NewGeneratorService(crypto.DefaultOptions(), recorder)

			_, err := svc.Generate(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, crypto.IsValidationError(err), "expected validation error, got %v", err)
			assert.Empty(t, recorder.events)
		})
	}
}

func TestGenerate_ExplicitZeroLengthIsNotDefaulted(t *testing.T) {
	svc := NewGeneratorService(crypto.Options{Length: 12, Numbers: true}, nil)

	_, err := svc.Generate(context.Background(), model.GenerateRequest{Length: intPtr(0)})

	var rangeErr *crypto.RangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, 0, rangeErr.Value)
}

func TestGenerate_RecordsConfigurationOnly(t *testing.T) {
	recorder := &fakeRecorder{}
	svc := NewGeneratorService(crypto.DefaultOptions(), recorder)

	_, err := svc.Generate(context.Background(), model.GenerateRequest{Length: intPtr(12), Symbols: boolPtr(false)})
	require.NoError(t, err)

	require.Len(t, recorder.events, 1)
	want := model.GenerationEvent{ID: 1, Length: 12, Uppercase: true, Lowercase: true, Numbers: true}
	assert.Equal(t, want, recorder.events[0])
}

func TestGenerate_RecorderFailureIsIgnored(t *testing.T) {
	svc := NewGeneratorService(crypto.DefaultOptions(), &fakeRecorder{err: errors.New("db down")})

	resp, err := svc.Generate(context.Background(), model.GenerateRequest{})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Password)
}

func TestGenerate_WithHash(t *testing.T) {
	recorder := &fakeRecorder{}
	svc := NewGeneratorService(crypto.DefaultOptions(), recorder)

	resp, err := svc.Generate(context.Background(), model.GenerateRequest{Hash: true})
	require.NoError(t, err)

	match, err := crypto.Verify(resp.Password, resp.Hash)
	require.NoError(t, err)
	assert.True(t, match, "hash does not match the returned password")

	require.Len(t, recorder.events, 1)
	assert.True(t, recorder.events[0].Hashed)
}

package service

import (
	"context"
	"log/slog"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
)

// EventRecorder stores the configuration of a completed generation.
type EventRecorder interface {
	Record(ctx context.Context, event *model.GenerationEvent) error
}

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	defaults crypto.Options
	recorder EventRecorder
}

// NewGeneratorService creates a new GeneratorService. recorder may be nil.
func NewGeneratorService(defaults crypto.Options, recorder EventRecorder) *GeneratorService {
	return &GeneratorService{defaults: defaults, recorder: recorder}
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(ctx context.Context, req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := s.resolve(req)

	password, err := crypto.NewGenerator(opts).Generate()
	if err != nil {
		return model.GenerateResponse{}, err
	}

	resp := model.GenerateResponse{
		Password: password,
		Length:   len(password),
	}

	if req.Hash {
		hash, err := crypto.Hash(password)
		if err != nil {
			return model.GenerateResponse{}, err
		}
		resp.Hash = hash
	}

	s.record(ctx, opts, req.Hash)

	return resp, nil
}

// resolve fills unset request fields from the configured defaults.
func (s *GeneratorService) resolve(req model.GenerateRequest) crypto.Options {
	opts := crypto.Options{
		Length:    intOrDefault(req.Length, s.defaults.Length),
		Uppercase: boolOrDefault(req.Uppercase, s.defaults.Uppercase),
		Lowercase: boolOrDefault(req.Lowercase, s.defaults.Lowercase),
		Numbers:   boolOrDefault(req.Numbers, s.defaults.Numbers),
		Symbols:   boolOrDefault(req.Symbols, s.defaults.Symbols),
	}

	return opts
}

func (s *GeneratorService) record(ctx context.Context, opts crypto.Options, hashed bool) {
	if s.recorder == nil {
		return
	}

	event := &model.GenerationEvent{
		Length:    opts.Length,
		Uppercase: opts.Uppercase,
		Lowercase: opts.Lowercase,
		Numbers:   opts.Numbers,
		Symbols:   opts.Symbols,
		Hashed:    hashed,
	}
	if err := s.recorder.Record(ctx, event); err != nil {
		slog.Warn("recording generation event failed", "error", err)
	}
}

// intOrDefault returns the dereferenced pointer value, or the fallback if nil.
// An explicit zero is kept so the generator rejects it.
func intOrDefault(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

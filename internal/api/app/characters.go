package app

import (
	"context"
	"errors"
	"strings"

	"github.com/alwaysleaveanote/perchanceManger-sub002/internal/domain"
	"github.com/alwaysleaveanote/perchanceManger-sub002/internal/ports"
)

type CharacterAPI struct {
	repo ports.CharacterRepository
}

func NewCharacterAPI(repo ports.CharacterRepository) *CharacterAPI { return &CharacterAPI{repo: repo} }

func (a *CharacterAPI) Create(name, bio string) (*domain.Character, error) {
	ctx := context.Background()
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("name is required")
	}
	c := &domain.Character{Name: strings.TrimSpace(name), Bio: bio}
	if err := a.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (a *CharacterAPI) Get(id int64) (*domain.Character, error) {
	ctx := context.Background()
	return a.repo.Get(ctx, id)
}

func (a *CharacterAPI) List() ([]*domain.Character, error) {
	ctx := context.Background()
	return a.repo.List(ctx)
}

func (a *CharacterAPI) Update(c domain.Character) (*domain.Character, error) {
	ctx := context.Background()
	if c.ID == 0 {
		return nil, errors.New("id is required")
	}
	if err := a.repo.Update(ctx, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (a *CharacterAPI) Delete(id int64) error {
	ctx := context.Background()
	return a.repo.Delete(ctx, id)
}

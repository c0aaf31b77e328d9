package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"herbverse/internal/models/response_models"
	"herbverse/internal/repositories"
	"herbverse/pkg/utils"
)

// PersonalizationServiceInterface manages the bookmarks and notes an account owns.
type PersonalizationServiceInterface interface {
	SetBookmark(ctx context.Context, userID, plantID string, add bool) (*response_models.BookmarksResponse, error)
	SaveNote(ctx context.Context, userID, plantID string, text *string) (*response_models.NotesResponse, error)
	DeleteNote(ctx context.Context, userID, plantID string) (*response_models.NotesResponse, error)
	GetPersonalization(ctx context.Context, userID string) (*response_models.PersonalizationResponse, error)
}

type PersonalizationService struct {
	accountRepo repositories.AccountRepository
	plantRepo   repositories.PlantRepository
	logger      *zap.SugaredLogger
}

func NewPersonalizationService(accountRepo repositories.AccountRepository, plantRepo repositories.PlantRepository, logger *zap.SugaredLogger) PersonalizationServiceInterface {
	return &PersonalizationService{
		accountRepo: accountRepo,
		plantRepo:   plantRepo,
		logger:      logger,
	}
}

// owner resolves the caller's account; a token for a deleted account is unauthenticated.
func (p *PersonalizationService) owner(ctx context.Context, userID string) (uuid.UUID, error) {
	id, err := parseID(userID, utils.ErrUnauthenticated)
	if err != nil {
		return uuid.Nil, err
	}
	account, err := p.accountRepo.FindById(ctx, id)
	if err != nil {
		p.logger.Errorw("find account by id", "error", err)
		return uuid.Nil, utils.ErrDatabaseError
	}
	if account == nil {
		return uuid.Nil, utils.ErrUnauthenticated
	}
	return id, nil
}

func parsePlantRef(plantID string) (uuid.UUID, error) {
	id, err := uuid.Parse(plantID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid plant id", utils.ErrValidation)
	}
	return id, nil
}

func (p *PersonalizationService) requirePlant(ctx context.Context, id uuid.UUID) error {
	plant, err := p.plantRepo.GetByID(ctx, id)
	if err != nil {
		p.logger.Errorw("get plant", "error", err)
		return utils.ErrDatabaseError
	}
	if plant == nil {
		return utils.ErrPlantNotFound
	}
	return nil
}

func (p *PersonalizationService) SetBookmark(ctx context.Context, userID, plantID string, add bool) (*response_models.BookmarksResponse, error) {
	accountID, err := p.owner(ctx, userID)
	if err != nil {
		return nil, err
	}
	plant, err := parsePlantRef(plantID)
	if err != nil {
		return nil, err
	}

	if add {
		if err := p.requirePlant(ctx, plant); err != nil {
			return nil, err
		}
		err = p.accountRepo.AddBookmark(ctx, accountID, plant)
	} else {
		err = p.accountRepo.RemoveBookmark(ctx, accountID, plant)
	}
	if err != nil {
		p.logger.Errorw("set bookmark", "add", add, "error", err)
		return nil, utils.ErrDatabaseError
	}

	ids, err := p.accountRepo.ListBookmarkedPlantIDs(ctx, accountID)
	if err != nil {
		p.logger.Errorw("list bookmarks", "error", err)
		return nil, utils.ErrDatabaseError
	}

	resp := &response_models.BookmarksResponse{Bookmarks: make([]string, 0, len(ids))}
	for _, id := range ids {
		resp.Bookmarks = append(resp.Bookmarks, id.String())
	}
	return resp, nil
}

func (p *PersonalizationService) SaveNote(ctx context.Context, userID, plantID string, text *string) (*response_models.NotesResponse, error) {
	if text == nil || *text == "" {
		return nil, fmt.Errorf("%w: note text is required", utils.ErrValidation)
	}
	accountID, err := p.owner(ctx, userID)
	if err != nil {
		return nil, err
	}
	plant, err := parsePlantRef(plantID)
	if err != nil {
		return nil, err
	}
	if err := p.requirePlant(ctx, plant); err != nil {
		return nil, err
	}

	if err := p.accountRepo.UpsertNote(ctx, accountID, plant, *text); err != nil {
		p.logger.Errorw("upsert note", "error", err)
		return nil, utils.ErrDatabaseError
	}
	return p.noteRefs(ctx, accountID)
}

func (p *PersonalizationService) DeleteNote(ctx context.Context, userID, plantID string) (*response_models.NotesResponse, error) {
	accountID, err := p.owner(ctx, userID)
	if err != nil {
		return nil, err
	}
	plant, err := parsePlantRef(plantID)
	if err != nil {
		return nil, err
	}

	if err := p.accountRepo.DeleteNote(ctx, accountID, plant); err != nil {
		p.logger.Errorw("delete note", "error", err)
		return nil, utils.ErrDatabaseError
	}
	return p.noteRefs(ctx, accountID)
}

func (p *PersonalizationService) noteRefs(ctx context.Context, accountID uuid.UUID) (*response_models.NotesResponse, error) {
	notes, err := p.accountRepo.ListNotes(ctx, accountID)
	if err != nil {
		p.logger.Errorw("list notes", "error", err)
		return nil, utils.ErrDatabaseError
	}

	resp := &response_models.NotesResponse{Notes: make([]response_models.NoteRef, 0, len(notes))}
	for _, n := range notes {
		resp.Notes = append(resp.Notes, response_models.NoteRef{PlantID: n.PlantID.String(), Text: n.Text})
	}
	return resp, nil
}

func (p *PersonalizationService) GetPersonalization(ctx context.Context, userID string) (*response_models.PersonalizationResponse, error) {
	accountID, err := p.owner(ctx, userID)
	if err != nil {
		return nil, err
	}

	bookmarkIDs, err := p.accountRepo.ListBookmarkedPlantIDs(ctx, accountID)
	if err != nil {
		p.logger.Errorw("list bookmarks", "error", err)
		return nil, utils.ErrDatabaseError
	}
	notes, err := p.accountRepo.ListNotes(ctx, accountID)
	if err != nil {
		p.logger.Errorw("list notes", "error", err)
		return nil, utils.ErrDatabaseError
	}

	ids := make([]uuid.UUID, 0, len(bookmarkIDs)+len(notes))
	ids = append(ids, bookmarkIDs...)
	for _, n := range notes {
		ids = append(ids, n.PlantID)
	}
	plants, err := p.resolvePlants(ctx, ids)
	if err != nil {
		return nil, err
	}

	resp := &response_models.PersonalizationResponse{
		Bookmarks: make([]response_models.Plant, 0, len(bookmarkIDs)),
		Notes:     make([]response_models.NoteResponse, 0, len(notes)),
	}
	for _, id := range bookmarkIDs {
		if plant, ok := plants[id]; ok {
			resp.Bookmarks = append(resp.Bookmarks, plant)
		}
	}
	for _, n := range notes {
		if plant, ok := plants[n.PlantID]; ok {
			resp.Notes = append(resp.Notes, response_models.NoteResponse{Plant: plant, Text: n.Text})
		}
	}
	return resp, nil
}

func (p *PersonalizationService) resolvePlants(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]response_models.Plant, error) {
	return resolvePlants(ctx, p.plantRepo, ids, p.logger)
}

func resolvePlants(ctx context.Context, repo repositories.PlantRepository, ids []uuid.UUID, logger *zap.SugaredLogger) (map[uuid.UUID]response_models.Plant, error) {
	plants, err := repo.GetByIDs(ctx, ids)
	if err != nil {
		logger.Errorw("get plants by ids", "error", err)
		return nil, utils.ErrDatabaseError
	}

	resolved := make(map[uuid.UUID]response_models.Plant, len(plants))
	for i := range plants {
		resolved[plants[i].ID] = toPlantResponse(&plants[i])
	}
	return resolved, nil
}

package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"herbverse/internal/models/db_models"
)

// ErrDuplicateKey is returned when an insert collides with a unique index.
var ErrDuplicateKey = errors.New("duplicate key")

// AccountRepository persists accounts together with the bookmarks and notes
// they own. Finders return (nil, nil) when no row matches.
type AccountRepository interface {
	Insert(ctx context.Context, account *db_models.Account) error
	Save(ctx context.Context, account *db_models.Account) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Account, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
	List(ctx context.Context) ([]db_models.Account, error)

	AddBookmark(ctx context.Context, accountID, plantID uuid.UUID) error
	RemoveBookmark(ctx context.Context, accountID, plantID uuid.UUID) error
	ListBookmarkedPlantIDs(ctx context.Context, accountID uuid.UUID) ([]uuid.UUID, error)

	UpsertNote(ctx context.Context, accountID, plantID uuid.UUID, text string) error
	DeleteNote(ctx context.Context, accountID, plantID uuid.UUID) error
	ListNotes(ctx context.Context, accountID uuid.UUID) ([]db_models.Note, error)

	// RemovePlantReferences drops every bookmark and note pointing at plantID.
	RemovePlantReferences(ctx context.Context, plantID uuid.UUID) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (a *accountRepository) Insert(ctx context.Context, account *db_models.Account) error {
	err := a.db.WithContext(ctx).Create(account).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateKey
	}
	return errors.Wrap(err, "insert account")
}

func (a *accountRepository) Save(ctx context.Context, account *db_models.Account) error {
	return errors.Wrap(a.db.WithContext(ctx).Save(account).Error, "save account")
}

func (a *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("account_id = ?", id).Delete(&db_models.Bookmark{}).Error; err != nil {
			return errors.Wrap(err, "delete bookmarks")
		}
		if err := tx.Where("account_id = ?", id).Delete(&db_models.Note{}).Error; err != nil {
			return errors.Wrap(err, "delete notes")
		}
		if err := tx.Delete(&db_models.Account{}, "id = ?", id).Error; err != nil {
			return errors.Wrap(err, "delete account")
		}
		return nil
	})
}

func (a *accountRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find account by id")
	}

	return &account, nil
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {

	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find account by email")
	}

	return &account, nil
}

func (a *accountRepository) List(ctx context.Context) ([]db_models.Account, error) {
	accounts := make([]db_models.Account, 0)
	if err := a.db.WithContext(ctx).Order("created_at").Find(&accounts).Error; err != nil {
		return nil, errors.Wrap(err, "list accounts")
	}
	return accounts, nil
}

func (a *accountRepository) AddBookmark(ctx context.Context, accountID, plantID uuid.UUID) error {
	err := a.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&db_models.Bookmark{AccountID: accountID, PlantID: plantID}).Error
	return errors.Wrap(err, "add bookmark")
}

func (a *accountRepository) RemoveBookmark(ctx context.Context, accountID, plantID uuid.UUID) error {
	err := a.db.WithContext(ctx).
		Where("account_id = ? AND plant_id = ?", accountID, plantID).
		Delete(&db_models.Bookmark{}).Error
	return errors.Wrap(err, "remove bookmark")
}

func (a *accountRepository) ListBookmarkedPlantIDs(ctx context.Context, accountID uuid.UUID) ([]uuid.UUID, error) {
	sql, args, err := squirrel.
		Select("b.plant_id").From("account_bookmarks b").
		Where(squirrel.Eq{"b.account_id": accountID}).
		OrderBy("b.created_at", "b.plant_id").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build sql")
	}

	ids := make([]uuid.UUID, 0)
	if err := a.db.WithContext(ctx).Raw(sql, args...).Scan(&ids).Error; err != nil {
		return nil, errors.Wrap(err, "scan bookmarks")
	}
	return ids, nil
}

func (a *accountRepository) UpsertNote(ctx context.Context, accountID, plantID uuid.UUID, text string) error {
	err := a.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account_id"}, {Name: "plant_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"text", "updated_at"}),
		}).
		Create(&db_models.Note{AccountID: accountID, PlantID: plantID, Text: text}).Error
	return errors.Wrap(err, "upsert note")
}

func (a *accountRepository) DeleteNote(ctx context.Context, accountID, plantID uuid.UUID) error {
	err := a.db.WithContext(ctx).
		Where("account_id = ? AND plant_id = ?", accountID, plantID).
		Delete(&db_models.Note{}).Error
	return errors.Wrap(err, "delete note")
}

func (a *accountRepository) ListNotes(ctx context.Context, accountID uuid.UUID) ([]db_models.Note, error) {
	notes := make([]db_models.Note, 0)
	err := a.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at").Order("plant_id").
		Find(&notes).Error
	if err != nil {
		return nil, errors.Wrap(err, "list notes")
	}
	return notes, nil
}

func (a *accountRepository) RemovePlantReferences(ctx context.Context, plantID uuid.UUID) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("plant_id = ?", plantID).Delete(&db_models.Bookmark{}).Error; err != nil {
			return errors.Wrap(err, "delete plant bookmarks")
		}
		if err := tx.Where("plant_id = ?", plantID).Delete(&db_models.Note{}).Error; err != nil {
			return errors.Wrap(err, "delete plant notes")
		}
		return nil
	})
}

package persona

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	log "github.com/sirupsen/logrus"
)

var ErrPersonaNotFound = errors.New("persona not found")

type Repository interface {
	StorePersona(ctx context.Context, persona Persona) error
	GetPersona(ctx context.Context, personaId string) (Persona, error)
	GetAllPersonas(ctx context.Context) ([]Persona, error)
	DeletePersona(ctx context.Context, personaId string) error
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) StorePersona(ctx context.Context, persona Persona) error {
	interests, err := json.Marshal(persona.Interests)
	if err != nil {
		return err
	}
	activities, err := json.Marshal(persona.PreferredActivities)
	if err != nil {
		return err
	}

	query := `INSERT INTO persona (
                            id,
                            owner_email,
                            name,
                            type,
                            description,
                            profile_image,
                            interests,
                            preferred_activities
						) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		persona.Id,
		persona.OwnerEmail,
		persona.Name,
		persona.Type,
		persona.Description,
		persona.ProfileImage,
		string(interests),
		string(activities),
	)
	if err != nil {
		log.Errorf("failed to store persona: %v", err)
		return err
	}
	return nil
}

func (r *RepositoryImpl) GetPersona(ctx context.Context, personaId string) (Persona, error) {
	query := `SELECT id, owner_email, name, type, description, profile_image, interests, preferred_activities
				FROM persona WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, personaId)
	persona, err := scanPersona(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return Persona{}, ErrPersonaNotFound
	} else if err != nil {
		log.Errorf("failed to get persona %s: %v", personaId, err)
		return Persona{}, err
	}
	return persona, nil
}

func (r *RepositoryImpl) GetAllPersonas(ctx context.Context) ([]Persona, error) {
	query := `SELECT id, owner_email, name, type, description, profile_image, interests, preferred_activities
				FROM persona ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Errorf("failed to query personas: %v", err)
		return nil, err
	}
	defer rows.Close()

	personas := make([]Persona, 0)
	for rows.Next() {
		persona, err := scanPersona(rows.Scan)
		if err != nil {
			return nil, err
		}
		personas = append(personas, persona)
	}
	return personas, rows.Err()
}

func (r *RepositoryImpl) DeletePersona(ctx context.Context, personaId string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM persona WHERE id = ?", personaId)
	if err != nil {
		log.Errorf("failed to delete persona %s: %v", personaId, err)
	}
	return err
}

func scanPersona(scan func(dest ...any) error) (Persona, error) {
	var persona Persona
	var interests, activities string
	err := scan(
		&persona.Id,
		&persona.OwnerEmail,
		&persona.Name,
		&persona.Type,
		&persona.Description,
		&persona.ProfileImage,
		&interests,
		&activities,
	)
	if err != nil {
		return Persona{}, err
	}
	if err := json.Unmarshal([]byte(interests), &persona.Interests); err != nil {
		return Persona{}, err
	}
	if err := json.Unmarshal([]byte(activities), &persona.PreferredActivities); err != nil {
		return Persona{}, err
	}
	return persona, nil
}

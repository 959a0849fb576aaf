package repository

import (
	"errors"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"formationpro_backend/internals/apperr"
)

// translate classifies a driver error into the apperr taxonomy. Postgres is
// matched on SQLSTATE, the sqlite test driver through GORM's translated
// sentinels, and message sniffing covers whatever the dialector missed
// (SQLSTATE 23505 unique_violation, 23503 foreign_key_violation).
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.Wrap(apperr.KindNotFound, "L'enregistrement n'existe pas !", err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperr.Wrap(apperr.KindConflict, "Un enregistrement avec cette valeur existe déjà !", err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperr.Wrap(apperr.KindConflict, "Référence invalide vers un enregistrement inexistant !", err)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505":
			return apperr.Wrap(apperr.KindConflict, "Un enregistrement avec cette valeur existe déjà !", err)
		case "23503":
			return apperr.Wrap(apperr.KindConflict, "Référence invalide vers un enregistrement inexistant !", err)
		}
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "23505") {
		return apperr.Wrap(apperr.KindConflict, "Un enregistrement avec cette valeur existe déjà !", err)
	}
	if strings.Contains(s, "foreign key") || strings.Contains(s, "23503") {
		return apperr.Wrap(apperr.KindConflict, "Référence invalide vers un enregistrement inexistant !", err)
	}

	return apperr.Wrap(apperr.KindPersistence, "Une erreur s'est produite lors de l'enregistrement !", err)
}

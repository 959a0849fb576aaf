package dto

import (
	"time"

	"formationpro_backend/internals/features/sessions/session_formations/model"
)

type CreateSessionFormationRequest struct {
	SessionID   uint `form:"sessionID" validate:"required,min=1"`
	FormationID uint `form:"formationID" validate:"required,min=1"`

	IsGroupe              *bool `form:"isGroupe" validate:"required"`
	PrixGroupe            int   `form:"prixGroupe" validate:"min=0"`
	IsPerso               *bool `form:"isPerso" validate:"required"`
	PrixPerso             int   `form:"prixPerso" validate:"min=0"`
	IsReductionGroupe     *bool `form:"isReductionGroupe" validate:"required"`
	PourcentageGroupe     int   `form:"pourcentageGroupe" validate:"min=0,max=100"`
	ValeurReductionGroupe int   `form:"valeurReductionGroupe" validate:"min=0"`
	IsReductionPerso      *bool `form:"isReductionPerso" validate:"required"`
	PourcentagePerso      int   `form:"pourcentagePerso" validate:"min=0,max=100"`
	ValeurReductionPerso  int   `form:"valeurReductionPerso" validate:"min=0"`
}

func (r CreateSessionFormationRequest) ToModel() model.SessionFormationModel {
	return model.SessionFormationModel{
		SessionID:             r.SessionID,
		FormationID:           r.FormationID,
		IsGroupe:              *r.IsGroupe,
		PrixGroupe:            r.PrixGroupe,
		IsPerso:               *r.IsPerso,
		PrixPerso:             r.PrixPerso,
		IsReductionGroupe:     *r.IsReductionGroupe,
		PourcentageGroupe:     r.PourcentageGroupe,
		ValeurReductionGroupe: r.ValeurReductionGroupe,
		IsReductionPerso:      *r.IsReductionPerso,
		PourcentagePerso:      r.PourcentagePerso,
		ValeurReductionPerso:  r.ValeurReductionPerso,
		CreatedAt:             time.Now(),
	}
}

type UpdateSessionFormationRequest struct {
	SessionID   *uint `form:"sessionID" validate:"omitempty,min=1"`
	FormationID *uint `form:"formationID" validate:"omitempty,min=1"`

	IsGroupe              *bool `form:"isGroupe"`
	PrixGroupe            *int  `form:"prixGroupe" validate:"omitempty,min=0"`
	IsPerso               *bool `form:"isPerso"`
	PrixPerso             *int  `form:"prixPerso" validate:"omitempty,min=0"`
	IsReductionGroupe     *bool `form:"isReductionGroupe"`
	PourcentageGroupe     *int  `form:"pourcentageGroupe" validate:"omitempty,min=0,max=100"`
	ValeurReductionGroupe *int  `form:"valeurReductionGroupe" validate:"omitempty,min=0"`
	IsReductionPerso      *bool `form:"isReductionPerso"`
	PourcentagePerso      *int  `form:"pourcentagePerso" validate:"omitempty,min=0,max=100"`
	ValeurReductionPerso  *int  `form:"valeurReductionPerso" validate:"omitempty,min=0"`
}

func (r UpdateSessionFormationRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.SessionID != nil {
		updates["session_id"] = *r.SessionID
	}
	if r.FormationID != nil {
		updates["formation_id"] = *r.FormationID
	}
	if r.IsGroupe != nil {
		updates["is_groupe"] = *r.IsGroupe
	}
	if r.PrixGroupe != nil {
		updates["prix_groupe"] = *r.PrixGroupe
	}
	if r.IsPerso != nil {
		updates["is_perso"] = *r.IsPerso
	}
	if r.PrixPerso != nil {
		updates["prix_perso"] = *r.PrixPerso
	}
	if r.IsReductionGroupe != nil {
		updates["is_reduction_groupe"] = *r.IsReductionGroupe
	}
	if r.PourcentageGroupe != nil {
		updates["pourcentage_groupe"] = *r.PourcentageGroupe
	}
	if r.ValeurReductionGroupe != nil {
		updates["valeur_reduction_groupe"] = *r.ValeurReductionGroupe
	}
	if r.IsReductionPerso != nil {
		updates["is_reduction_perso"] = *r.IsReductionPerso
	}
	if r.PourcentagePerso != nil {
		updates["pourcentage_perso"] = *r.PourcentagePerso
	}
	if r.ValeurReductionPerso != nil {
		updates["valeur_reduction_perso"] = *r.ValeurReductionPerso
	}
	return updates
}

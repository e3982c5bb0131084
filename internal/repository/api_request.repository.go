package repository

import (
	"fmt"

	"papertrade/internal/db/models/postgres/public/model"
	"papertrade/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type ApiRequestRepository interface {
	Add(db qrm.Queryable, ar model.APIRequest) (*model.APIRequest, error)
	Update(db qrm.Queryable, ar model.APIRequest) error
}

type ApiRequestRepositoryHandler struct{}

func (h ApiRequestRepositoryHandler) Add(db qrm.Queryable, ar model.APIRequest) (*model.APIRequest, error) {
	query := table.APIRequest.
		INSERT(table.APIRequest.MutableColumns).
		MODEL(ar).
		RETURNING(table.APIRequest.AllColumns)

	out := model.APIRequest{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert api request: %w", err)
	}

	return &out, nil
}

func (h ApiRequestRepositoryHandler) Update(db qrm.Queryable, ar model.APIRequest) error {
	query := table.APIRequest.
		UPDATE(table.APIRequest.MutableColumns).
		MODEL(ar).
		WHERE(table.APIRequest.APIRequestID.EQ(postgres.UUID(ar.APIRequestID))).
		RETURNING(table.APIRequest.AllColumns)

	out := model.APIRequest{}
	err := query.Query(db, &out)
	if err != nil {
		return fmt.Errorf("failed to update api request: %w", err)
	}

	return nil
}

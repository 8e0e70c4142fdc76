package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"meet-scheduler/internal/domain/request"
	"meet-scheduler/internal/infra"
	"meet-scheduler/internal/infra/kv"
)

type RequestRepository struct {
	store kv.Store
}

func NewRequestRepository(store kv.Store) *RequestRepository {
	return &RequestRepository{store: store}
}

func (r *RequestRepository) Save(ctx context.Context, req *request.Request, ttl time.Duration) error {
	data, err := json.Marshal(requestToRecord(req))
	if err != nil {
		return infra.WrapRepoErr(infra.KindCorrupt, "failed to encode request record", err)
	}
	if err := r.store.Put(ctx, requestKeyPrefix+req.ID(), data, ttl); err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to store request", err)
	}
	return nil
}

// FindByToken scans the live request set for the admin capability token.
func (r *RequestRepository) FindByToken(ctx context.Context, token string) (*request.Request, error) {
	entries, err := r.store.ListByPrefix(ctx, requestKeyPrefix)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list requests", err)
	}
	for _, e := range entries {
		var rec requestRecord
		if err := json.Unmarshal(e.Value, &rec); err != nil {
			return nil, infra.WrapRepoErr(infra.KindCorrupt, "failed to decode request record "+e.Key, err)
		}
		if rec.Token == token {
			return recordToRequest(rec), nil
		}
	}
	return nil, infra.WrapRepoErr(infra.KindNotFound, "no request matches token", nil)
}

func (r *RequestRepository) FindByID(ctx context.Context, id string) (*request.Request, error) {
	data, err := r.store.Get(ctx, requestKeyPrefix+id)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "request not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to get request", err)
	}
	var rec requestRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, infra.WrapRepoErr(infra.KindCorrupt, "failed to decode request record", err)
	}
	return recordToRequest(rec), nil
}

func requestToRecord(req *request.Request) requestRecord {
	var location *string
	if req.Location() != "" {
		location = strPtr(req.Location())
	}
	return requestRecord{
		SchemaVersion:     recordSchemaVersion,
		ID:                req.ID(),
		Token:             req.Token(),
		Name:              req.Name(),
		Email:             req.Email(),
		Company:           req.Company(),
		Role:              req.Role(),
		MeetingTypeID:     req.MeetingTypeID(),
		MeetingTypeTitle:  req.MeetingTypeTitle(),
		DurationMinutes:   req.DurationMinutes(),
		RequestedDate:     req.RequestedDate(),
		RequestedTime:     req.RequestedTime(),
		Timezone:          req.Timezone(),
		Location:          location,
		DiscussionTopics:  req.DiscussionTopics(),
		DiscussionDetails: req.DiscussionDetails(),
		Status:            string(req.Status()),
		CreatedAt:         req.CreatedAt(),
		ApprovedAt:        req.ApprovedAt(),
		DeniedAt:          req.DeniedAt(),
		DenialReason:      req.DenialReason(),
	}
}

func recordToRequest(rec requestRecord) *request.Request {
	topics := rec.DiscussionTopics
	if topics == nil {
		topics = []string{}
	}
	return request.Reconstruct(request.ReconstructParams{
		ID:                rec.ID,
		Token:             rec.Token,
		Name:              rec.Name,
		Email:             rec.Email,
		Company:           rec.Company,
		Role:              rec.Role,
		MeetingTypeID:     rec.MeetingTypeID,
		MeetingTypeTitle:  rec.MeetingTypeTitle,
		DurationMinutes:   rec.DurationMinutes,
		RequestedDate:     rec.RequestedDate,
		RequestedTime:     rec.RequestedTime,
		Timezone:          rec.Timezone,
		Location:          derefOr(rec.Location, ""),
		DiscussionTopics:  topics,
		DiscussionDetails: rec.DiscussionDetails,
		Status:            request.Status(rec.Status),
		CreatedAt:         rec.CreatedAt,
		ApprovedAt:        rec.ApprovedAt,
		DeniedAt:          rec.DeniedAt,
		DenialReason:      rec.DenialReason,
	})
}

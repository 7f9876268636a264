package storage_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v3"

	"github.com/ammerola/buyback-be/internal/adapters/storage"
	"github.com/ammerola/buyback-be/internal/core/domain"
	"github.com/ammerola/buyback-be/test/helpers"
)

type upload struct {
	input *s3.PutObjectInput
	body  []byte
}

type recordingUploader struct {
	uploads []upload
	err     error
}

func (u *recordingUploader) Upload(_ context.Context, input *s3.PutObjectInput, _ ...func(*manager.Uploader)) (*manager.UploadOutput, error) {
	if u.err != nil {
		return nil, u.err
	}
	body, err := io.ReadAll(input.Body)
	if err != nil {
		return nil, err
	}
	u.uploads = append(u.uploads, upload{input: input, body: body})
	return &manager.UploadOutput{Location: "s3://" + aws.ToString(input.Bucket) + "/" + aws.ToString(input.Key)}, nil
}

func testSnapshot(reference *string) *domain.OfferSnapshot {
	offer := &domain.BuybackOffer{
		ID:         uuid.New(),
		Reference:  reference,
		AccountID:  uuid.New(),
		Validated:  true,
		TotalPrice: decimal.RequireFromString("120.50"),
	}
	items := []*domain.AuditItem{
		{ID: uuid.New(), StatePrice: decimal.RequireFromString("100"), ConditionPrice: decimal.RequireFromString("120.50")},
	}
	return domain.NewOfferSnapshot(offer, items, time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC))
}

func TestOfferArchive_StoreOffer(t *testing.T) {
	tests := []struct {
		name        string
		reference   *string
		expectedKey func(s *domain.OfferSnapshot) string
	}{
		{
			name:        "keyed_by_reference",
			reference:   aws.String("BO-2026-000042"),
			expectedKey: func(*domain.OfferSnapshot) string { return "offers/BO-2026-000042.json" },
		},
		{
			name:        "falls_back_to_id_without_reference",
			reference:   nil,
			expectedKey: func(s *domain.OfferSnapshot) string { return "offers/" + s.Offer.ID.String() + ".json" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uploader := &recordingUploader{}
			archive := storage.NewOfferArchive(uploader, "buyback-archive", "offers", helpers.TestLogger())
			snapshot := testSnapshot(tt.reference)

			key, err := archive.StoreOffer(context.Background(), snapshot)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedKey(snapshot), key)

			require.Len(t, uploader.uploads, 2)
			snap := uploader.uploads[0]
			assert.Equal(t, "buyback-archive", aws.ToString(snap.input.Bucket))
			assert.Equal(t, key, aws.ToString(snap.input.Key))
			assert.Equal(t, "application/json", aws.ToString(snap.input.ContentType))
			assert.Equal(t, snapshot.Offer.ID.String(), snap.input.Metadata["buyback-offer-id"])
			assert.Equal(t, "1", snap.input.Metadata["items"])

			sheet := uploader.uploads[1]
			assert.Equal(t, strings.TrimSuffix(key, ".json")+".xlsx", aws.ToString(sheet.input.Key))
			assert.NotEmpty(t, sheet.body)

			var decoded domain.OfferSnapshot
			require.NoError(t, json.Unmarshal(snap.body, &decoded))
			assert.Equal(t, snapshot.Offer.ID, decoded.Offer.ID)
			require.Len(t, decoded.Items, 1)
			assert.True(t, decoded.Items[0].ConditionPrice.Equal(decimal.RequireFromString("120.50")))
		})
	}
}

func TestOfferArchive_StoreOffer_UploadError(t *testing.T) {
	uploader := &recordingUploader{err: errors.New("access denied")}
	archive := storage.NewOfferArchive(uploader, "buyback-archive", "offers", helpers.TestLogger())

	_, err := archive.StoreOffer(context.Background(), testSnapshot(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}

func TestOfferArchive_StoreOffer_NilSnapshot(t *testing.T) {
	archive := storage.NewOfferArchive(&recordingUploader{}, "buyback-archive", "offers", helpers.TestLogger())

	_, err := archive.StoreOffer(context.Background(), nil)
	assert.Error(t, err)
}

func TestOfferWorkbook(t *testing.T) {
	snapshot := testSnapshot(aws.String("BO-2026-000042"))

	body, err := storage.OfferWorkbook(snapshot)
	require.NoError(t, err)

	file, err := xlsx.OpenBinary(body)
	require.NoError(t, err)
	require.Len(t, file.Sheets, 2)
	assert.Equal(t, "Offer", file.Sheets[0].Name)
	assert.Equal(t, "Items", file.Sheets[1].Name)
	assert.Equal(t, 2, file.Sheets[1].MaxRow)

	row, err := file.Sheets[1].Row(1)
	require.NoError(t, err)
	assert.Equal(t, snapshot.Items[0].AuditItemID.String(), row.GetCell(0).Value)
	assert.Equal(t, "120.50", row.GetCell(5).Value)
}

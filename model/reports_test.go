package model

import (
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeMicrochipID(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ABC123", NormalizeMicrochipID("abc123"))
	assert.Equal(t, "ABC123", NormalizeMicrochipID("  Abc123 "))
	assert.Equal(t, "", NormalizeMicrochipID("   "))
}

func TestSyncStatus_Valid(t *testing.T) {
	t.Parallel()
	assert.True(t, SyncStatusLocal.Valid())
	assert.True(t, SyncStatusPending.Valid())
	assert.True(t, SyncStatusSynced.Valid())
	assert.False(t, SyncStatus("uploaded").Valid())
	assert.False(t, SyncStatus("").Valid())
}

func TestPhotoRef(t *testing.T) {
	t.Parallel()

	t.Run("none", func(t *testing.T) {
		p := NoPhoto()
		assert.True(t, p.IsNone())
		assert.False(t, p.IsLocal())
		assert.False(t, p.IsRemote())
	})

	t.Run("local", func(t *testing.T) {
		p := LocalPhoto("stray_animal_images/xxx")
		assert.True(t, p.IsLocal())
		assert.False(t, p.IsRemote())
		assert.False(t, p.IsNone())
	})

	t.Run("remote", func(t *testing.T) {
		p := RemotePhoto("https://example.com/img.png")
		assert.True(t, p.IsRemote())
		assert.False(t, p.IsLocal())
	})

	t.Run("empty ref is treated as none", func(t *testing.T) {
		assert.True(t, PhotoRef{Kind: PhotoKindLocal}.IsNone())
		assert.True(t, PhotoRef{Kind: PhotoKindRemote}.IsNone())
	})
}

func TestParseReportTime(t *testing.T) {
	t.Parallel()

	t.Run("local date time", func(t *testing.T) {
		ts, err := ParseReportTime("2024-06-01T12:34:56")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 6, 1, 12, 34, 56, 0, time.UTC), ts)
	})

	t.Run("rfc3339 fallback", func(t *testing.T) {
		_, err := ParseReportTime("2024-06-01T12:34:56+09:00")
		assert.NoError(t, err)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := ParseReportTime("yesterday")
		assert.Error(t, err)
	})
}

func TestStrayAnimalReportDocument(t *testing.T) {
	t.Parallel()

	r := &StrayAnimalReport{
		UniqueID:    uuid.Must(uuid.NewV4()),
		Photo:       RemotePhoto("https://example.com/img.png"),
		Type:        "cat",
		Colour:      "black",
		Sex:         "male",
		Appearance:  "short fur",
		Location:    "near the station",
		MicrochipID: "CHIP-0042",
		Contact:     "test@example.com",
		Additional:  "very friendly",
		ReportedAt:  time.Date(2024, 6, 1, 12, 34, 56, 0, time.UTC),
		ReportedBy:  "user-1",
		SyncStatus:  SyncStatusLocal,
	}

	doc := r.ToDocument()
	assert.Equal(t, r.UniqueID.String(), doc["strayAnimalReportUniqueId"])
	assert.Equal(t, "https://example.com/img.png", doc["strayAnimalPhotoPath"])
	assert.Equal(t, "2024-06-01T12:34:56", doc["strayAnimalReportDateAndTime"])
	assert.Equal(t, true, doc["strayAnimalIsUploaded"])

	got, err := StrayAnimalReportFromDocument(doc)
	require.NoError(t, err)
	assert.Equal(t, r.UniqueID, got.UniqueID)
	assert.Equal(t, r.Type, got.Type)
	assert.Equal(t, r.ReportedAt, got.ReportedAt)
	// 復元された行はリモート由来なのでsynced
	assert.Equal(t, SyncStatusSynced, got.SyncStatus)
	// 写真参照は呼び出し側が解決する
	assert.True(t, got.Photo.IsNone())
}

func TestStrayAnimalReportFromDocument_BadDocument(t *testing.T) {
	t.Parallel()

	t.Run("missing unique id", func(t *testing.T) {
		_, err := StrayAnimalReportFromDocument(map[string]any{})
		assert.ErrorIs(t, err, ErrBadDocument)
	})

	t.Run("bad time", func(t *testing.T) {
		_, err := StrayAnimalReportFromDocument(map[string]any{
			"strayAnimalReportUniqueId":    uuid.Must(uuid.NewV4()).String(),
			"strayAnimalReportDateAndTime": "not a time",
		})
		assert.ErrorIs(t, err, ErrBadDocument)
	})
}

func TestLostPetReportDocument(t *testing.T) {
	t.Parallel()

	r := &LostPetReport{
		UniqueID:    uuid.Must(uuid.NewV4()),
		Photo:       NoPhoto(),
		Type:        "dog",
		Name:        "Pochi",
		Colour:      "brown",
		Sex:         "male",
		Appearance:  "curly tail",
		Location:    "riverside park",
		MicrochipID: "985112000000001",
		Contact:     "test@example.com",
		ReportedAt:  time.Date(2024, 6, 1, 12, 34, 56, 0, time.UTC),
		ReportedBy:  "user-1",
		SyncStatus:  SyncStatusLocal,
	}

	doc := r.ToDocument()
	assert.Equal(t, r.UniqueID.String(), doc["lostPetReportUniqueId"])
	assert.Equal(t, "Pochi", doc["lostPetName"])
	assert.Equal(t, "", doc["lostPetPhoto"])
	assert.Equal(t, "riverside park", doc["lostPetLastKnownLocation"])

	got, err := LostPetReportFromDocument(doc)
	require.NoError(t, err)
	assert.Equal(t, r.UniqueID, got.UniqueID)
	assert.Equal(t, r.Name, got.Name)
	assert.Equal(t, SyncStatusSynced, got.SyncStatus)
}

func TestLostPetReportFromDocument_NormalizesMicrochipID(t *testing.T) {
	t.Parallel()

	doc := map[string]any{
		"lostPetReportUniqueId":    uuid.Must(uuid.NewV4()).String(),
		"lostPetReportDateAndTime": "2024-06-01T12:34:56",
		"lostPetMicrochipId":       " chip-7 ",
	}
	got, err := LostPetReportFromDocument(doc)
	require.NoError(t, err)
	assert.Equal(t, "CHIP-7", got.MicrochipID)
}

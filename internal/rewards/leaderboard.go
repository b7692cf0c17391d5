package rewards

import (
	"sort"

	"github.com/google/uuid"
)

// UserVolume is the total lifted volume (kg x reps) of a user.
// Users without sets are expected with zero volume, not left out.
type UserVolume struct {
	UserID        uuid.UUID
	Username      string
	TotalVolumeKg float64
}

type LeaderboardEntry struct {
	UserID        uuid.UUID `json:"userId"`
	Username      string    `json:"username"`
	TotalVolumeKg float64   `json:"totalVolumeKg"`
	Rank          int       `json:"rank"`
}

// RankLeaderboard sorts users by volume and assigns SQL RANK() style ranks:
// equal volumes share a rank, and the next volume skips by the number of ties
// ([100, 100, 80] -> [1, 1, 3]). Ties are ordered by username, then user id.
// Returns at most limit entries, all of them if limit <= 0.
func RankLeaderboard(volumes []UserVolume, limit int) []LeaderboardEntry {
	sorted := make([]UserVolume, len(volumes))
	copy(sorted, volumes)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.TotalVolumeKg != b.TotalVolumeKg {
			return a.TotalVolumeKg > b.TotalVolumeKg
		}
		if a.Username != b.Username {
			return a.Username < b.Username
		}
		return a.UserID.String() < b.UserID.String()
	})

	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	entries := make([]LeaderboardEntry, 0, len(sorted))
	for i, uv := range sorted {
		rank := i + 1
		if i > 0 && uv.TotalVolumeKg == sorted[i-1].TotalVolumeKg {
			rank = entries[i-1].Rank
		}
		entries = append(entries, LeaderboardEntry{
			UserID:        uv.UserID,
			Username:      uv.Username,
			TotalVolumeKg: uv.TotalVolumeKg,
			Rank:          rank,
		})
	}

	return entries
}

package catalogmem

import "github.com/voidbay/paygate/internal/catalog"

// DefaultItems is the release listing served when no external catalog is
// configured.
func DefaultItems() []catalog.Item {
	return []catalog.Item{
		{
			ID:         "nebula-drift",
			Title:      "Nebula Drift: Deluxe Edition",
			Category:   catalog.CategoryGame,
			Size:       "87.4 GB",
			Uploader:   "voidbay",
			UploadTime: "2 hours ago",
			Seeders:    2841,
			Leechers:   312,
			Hot:        true,
		},
		{
			ID:         "ironclad-tactics-2",
			Title:      "Ironclad Tactics II",
			Category:   catalog.CategoryGame,
			Size:       "42.1 GB",
			Uploader:   "voidbay",
			UploadTime: "1 day ago",
			Seeders:    1593,
			Leechers:   204,
		},
		{
			ID:         "crimson-harvest",
			Title:      "Crimson Harvest",
			Category:   catalog.CategoryGame,
			Size:       "63.8 GB",
			Uploader:   "nightowl",
			UploadTime: "3 days ago",
			Seeders:    987,
			Leechers:   451,
		},
		{
			ID:         "photoforge-studio",
			Title:      "PhotoForge Studio 2026",
			Category:   catalog.CategorySoftware,
			Size:       "3.2 GB",
			Uploader:   "keymaster",
			UploadTime: "5 hours ago",
			Seeders:    4210,
			Leechers:   128,
			Hot:        true,
		},
		{
			ID:         "soundlab-pro",
			Title:      "SoundLab Pro 12",
			Category:   catalog.CategorySoftware,
			Size:       "18.6 GB",
			Uploader:   "keymaster",
			UploadTime: "2 days ago",
			Seeders:    1102,
			Leechers:   89,
		},
		{
			ID:         "last-meridian",
			Title:      "The Last Meridian",
			Category:   catalog.CategoryMovie,
			Size:       "54.3 GB",
			Uploader:   "cine4k",
			UploadTime: "6 hours ago",
			Seeders:    765,
			Leechers:   233,
		},
		{
			ID:         "midnight-circuit",
			Title:      "Midnight Circuit",
			Category:   catalog.CategoryMovie,
			Size:       "8.9 GB",
			Uploader:   "cine4k",
			UploadTime: "4 days ago",
			Seeders:    1876,
			Leechers:   97,
		},
		{
			ID:         "auroraos-11",
			Title:      "AuroraOS 11 Ultimate",
			Category:   catalog.CategoryOS,
			Size:       "6.4 GB",
			Uploader:   "voidbay",
			UploadTime: "1 week ago",
			Seeders:    3324,
			Leechers:   176,
			Hot:        true,
		},
	}
}

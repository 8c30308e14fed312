package catalog

import "time"

const demoBaseURL = "https://storage.googleapis.com/pedro-dev-ent-misc/"

// Demo returns the built-in catalog of nine remote tracks.
// It is used when no music folders are configured or with --demo.
func Demo() *Catalog {
	songs := []struct {
		id, title, artist, file string
		seconds                 int
	}{
		{"1", "Neon Dreanue", "Starlight Symphony", "Neon_Dreanue.mp3", 236},
		{"2", "Neon Dreams", "Starlight Symphony", "Neon_Dreams.mp3", 236},
		{"3", "Midnight Serenade", "Starlight Symphony", "Midnight_Serenade.mp3", 195},
		{"4", "Funkytown", "Funkytown", "Funkytown.mp3", 210},
		{"5", "Pixel Bloom", "Aclave ta ote tine", "Pixel_Bloom.mp3", 188},
		{"6", "Echoes in the Rain", "Cloudbuist", "Echoes_in_the_Rain.mp3", 241},
		{"7", "Cloudburst", "Neon Dreams", "Cloudburst.mp3", 223},
		{"8", "Electric Pulse", "Cyberwave", "Electric_Pulse.mp3", 205},
		{"9", "Lost in the Grid", "Datastream", "Lost_in_the_Grid.mp3", 255},
	}

	tracks := make([]Track, 0, len(songs))
	for _, s := range songs {
		tracks = append(tracks, Track{
			ID:         s.id,
			Title:      s.title,
			Artist:     s.artist,
			ArtworkURL: "https://picsum.photos/seed/song" + s.id + "/200",
			Duration:   time.Duration(s.seconds) * time.Second,
			AudioRef:   demoBaseURL + s.file,
		})
	}
	return New(tracks)
}

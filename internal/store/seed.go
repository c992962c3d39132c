package store

import "github.com/myflix/myflix-api/internal/models"

var (
	sciFi = models.Genre{
		Name:        "Science Fiction",
		Description: "Speculative stories built around imagined technology, space travel, and other worlds.",
	}
	lucas = models.Director{
		Name:      "George Lucas",
		Bio:       "American filmmaker, creator of the Star Wars saga and founder of Lucasfilm.",
		BirthYear: 1944,
	}
)

// SeedMovies returns the starter catalog loaded by cmd/seed into an empty
// movies collection. Tests use it as a fixture.
func SeedMovies() []models.Movie {
	return []models.Movie{
		{
			Title:       "The Phantom Menace",
			Description: "Two Jedi escort a queen off a blockaded planet and discover a boy strong in the Force.",
			Genre:       sciFi,
			Director:    lucas,
		},
		{
			Title:       "Attack of the Clones",
			Description: "A Jedi apprentice uncovers a clone army while the galaxy slides toward war.",
			Genre:       sciFi,
			Director:    lucas,
		},
		{
			Title:       "Revenge of the Sith",
			Description: "The Clone Wars end with the fall of the Jedi Order and the rise of the Empire.",
			Genre:       sciFi,
			Director:    lucas,
		},
		{
			Title:       "A New Hope",
			Description: "A farm boy joins a rebellion to destroy the Empire's planet-killing battle station.",
			Genre:       sciFi,
			Director:    lucas,
		},
		{
			Title:       "The Empire Strikes Back",
			Description: "The rebels scatter after a crushing defeat while Luke trains with a hidden Jedi master.",
			Genre:       sciFi,
			Director: models.Director{
				Name:      "Irvin Kershner",
				Bio:       "American director known for character-driven sequels and thrillers.",
				BirthYear: 1923,
			},
		},
		{
			Title:       "Return of the Jedi",
			Description: "The rebellion mounts a final assault on the second Death Star as Luke confronts Vader.",
			Genre:       sciFi,
			Director: models.Director{
				Name:      "Richard Marquand",
				Bio:       "Welsh film director best known for the final chapter of the original Star Wars trilogy.",
				BirthYear: 1937,
			},
		},
		{
			Title:       "The Force Awakens",
			Description: "A scavenger and a defector are drawn into the search for the galaxy's last Jedi.",
			Genre:       sciFi,
			Director: models.Director{
				Name:      "J. J. Abrams",
				Bio:       "American filmmaker behind large-scale franchise revivals in film and television.",
				BirthYear: 1966,
			},
		},
		{
			Title:       "The Last Jedi",
			Description: "The Resistance runs from the First Order while Rey seeks out a reluctant Luke Skywalker.",
			Genre:       sciFi,
			Director: models.Director{
				Name:      "Rian Johnson",
				Bio:       "American writer-director known for genre-bending mysteries and thrillers.",
				BirthYear: 1973,
			},
		},
		{
			Title:       "The Rise of Skywalker",
			Description: "The surviving Resistance faces a resurrected Emperor in the saga's conclusion.",
			Genre:       sciFi,
			Director: models.Director{
				Name:      "J. J. Abrams",
				Bio:       "American filmmaker behind large-scale franchise revivals in film and television.",
				BirthYear: 1966,
			},
		},
		{
			Title:       "Rogue One",
			Description: "A band of rebels steals the Death Star plans in the days before A New Hope.",
			Genre:       sciFi,
			Director: models.Director{
				Name:      "Gareth Edwards",
				Bio:       "British director who moved from micro-budget sci-fi to blockbuster franchises.",
				BirthYear: 1975,
			},
		},
	}
}

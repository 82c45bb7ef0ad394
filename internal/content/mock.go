package content

import "focusboard/internal/storage"

// MockInspiration returns built-in bundle i, wrapping around the available set.
func MockInspiration(i int) storage.InspirationContent {
	n := len(mockInspirations)
	return mockInspirations[((i%n)+n)%n]
}

var mockInspirations = []storage.InspirationContent{
	{
		Artist: storage.Artist{
			Style:       "Art Nouveau",
			Name:        "Alphonse Mucha",
			Description: "Peintre tchèque connu pour ses affiches ornementales et ses motifs floraux distinctifs.",
			Palette:     []string{"#D4A574", "#8B7355", "#556B2F", "#2F4F4F", "#DEB887"},
		},
		Personality: storage.Personality{
			Name:     "Marie Curie",
			Bio:      "Physicienne et chimiste franco-polonaise, première femme à recevoir un prix Nobel et seule personne à en avoir reçu dans deux domaines scientifiques différents.",
			WikiLink: "https://fr.wikipedia.org/wiki/Marie_Curie",
		},
		Book: storage.Book{
			Title:      "L'Étranger",
			Author:     "Albert Camus",
			Summary:    "Meursault, un employé de bureau algérois, apprend la mort de sa mère. Il assiste aux funérailles sans montrer d'émotion. Plus tard, il commet un meurtre absurde sur une plage et est condamné à mort, moins pour son crime que pour son indifférence.",
			Context:    "Publié en 1942, ce roman illustre la philosophie de l'absurde développée par Camus.",
			Importance: "Œuvre fondatrice de l'existentialisme littéraire, elle interroge le sens de l'existence et les conventions sociales.",
		},
		Artwork: storage.Artwork{
			Name:       "La Nuit étoilée",
			Artist:     "Vincent van Gogh",
			Techniques: "Huile sur toile, coups de pinceau tourbillonnants, palette bleu-jaune intense",
			Meaning:    "Peinte depuis l'asile de Saint-Rémy, elle représente la vision tourmentée mais sublime du ciel nocturne par Van Gogh.",
		},
		Album: storage.Album{
			Title:       "Histoire de Melody Nelson",
			Artist:      "Serge Gainsbourg",
			Style:       "Pop orchestrale, rock symphonique",
			SpotifyLink: "https://open.spotify.com/album/4gxLz5lUSlJjGW5yzgcDrN",
		},
		Invention: storage.Invention{
			Name:     "L'imprimerie",
			Inventor: "Johannes Gutenberg",
			Date:     "vers 1440",
			Impact:   "A révolutionné la diffusion du savoir, rendant les livres accessibles et permettant la Renaissance et la Réforme.",
		},
		Word: storage.Word{
			Word:       "Sérendipité",
			Definition: "Découverte heureuse faite par hasard, capacité à trouver ce qu'on ne cherchait pas.",
			Etymology:  "Du conte persan \"Les Trois Princes de Serendip\" où les héros font des découvertes fortuites.",
			Example:    "La découverte de la pénicilline par Fleming est un exemple de sérendipité.",
		},
		Exercise: "Écrivez un court récit où votre personnage, inspiré par le style de Mucha, découvre par sérendipité un livre qui changera sa vie, le tout sous un ciel étoilé rappelant Van Gogh.",
	},
	{
		Artist: storage.Artist{
			Style:       "Impressionnisme",
			Name:        "Claude Monet",
			Description: "Chef de file du mouvement impressionniste, célèbre pour ses séries de nénuphars et ses études de lumière.",
			Palette:     []string{"#87CEEB", "#98FB98", "#DDA0DD", "#F0E68C", "#E0FFFF"},
		},
		Personality: storage.Personality{
			Name:     "Simone de Beauvoir",
			Bio:      "Philosophe, romancière et essayiste française, figure majeure du féminisme et de l'existentialisme.",
			WikiLink: "https://fr.wikipedia.org/wiki/Simone_de_Beauvoir",
		},
		Book: storage.Book{
			Title:      "Le Petit Prince",
			Author:     "Antoine de Saint-Exupéry",
			Summary:    "Un aviateur échoué dans le désert rencontre un petit prince venu d'un astéroïde. À travers son voyage entre les planètes, le prince livre une critique poétique du monde des adultes.",
			Context:    "Écrit en 1943 à New York pendant l'exil de l'auteur, c'est un conte philosophique universel.",
			Importance: "L'un des livres les plus traduits au monde, il aborde l'amitié, l'amour et la perte avec une profondeur accessible.",
		},
		Artwork: storage.Artwork{
			Name:       "Les Nymphéas",
			Artist:     "Claude Monet",
			Techniques: "Huile sur toile, touches légères, reflets aquatiques",
			Meaning:    "Série monumentale représentant le jardin d'eau de Giverny, explorant la lumière et ses variations.",
		},
		Album: storage.Album{
			Title:       "Homework",
			Artist:      "Daft Punk",
			Style:       "French house, electronic",
			SpotifyLink: "https://open.spotify.com/album/5uRdvUR7xCnHmUW8n64n9y",
		},
		Invention: storage.Invention{
			Name:     "Le vaccin",
			Inventor: "Edward Jenner",
			Date:     "1796",
			Impact:   "A ouvert la voie à l'éradication de maladies mortelles et sauvé des millions de vies.",
		},
		Word: storage.Word{
			Word:       "Ephémère",
			Definition: "Qui ne dure qu'un jour, par extension ce qui est de courte durée.",
			Etymology:  "Du grec ephêmeros, de epi (sur) et hêmera (jour).",
			Example:    "Les fleurs de cerisier sont d'une beauté éphémère.",
		},
		Exercise: "Créez une lettre que le Petit Prince écrirait à Simone de Beauvoir sur le thème de la liberté, en utilisant les couleurs impressionnistes de Monet.",
	},
}

var mockCodeQuiz = []Question{
	{
		Question: "Quelle est la vitesse maximale autorisée en agglomération ?",
		Options:  []string{"30 km/h", "50 km/h", "70 km/h", "90 km/h"},
		Correct:  1,
	},
	{
		Question: "Le panneau triangulaire avec un point d'exclamation signifie :",
		Options:  []string{"Stop obligatoire", "Danger non spécifié", "Priorité à droite", "Zone piétonne"},
		Correct:  1,
	},
	{
		Question: "À quelle distance minimale doit-on stationner d'un passage piéton ?",
		Options:  []string{"3 mètres", "5 mètres", "10 mètres", "15 mètres"},
		Correct:  1,
	},
	{
		Question: "Le taux d'alcoolémie maximal autorisé pour un conducteur novice est de :",
		Options:  []string{"0,2 g/l", "0,5 g/l", "0,8 g/l", "0 g/l"},
		Correct:  0,
	},
	{
		Question: "Sur autoroute, quelle est la distance de sécurité minimale recommandée ?",
		Options:  []string{"50 mètres", "2 secondes", "100 mètres", "1 seconde"},
		Correct:  1,
	},
}

var mockInspiQuiz = []Question{
	{
		Question: "Quel artiste est associé au mouvement Art Nouveau ?",
		Options:  []string{"Picasso", "Alphonse Mucha", "Monet", "Dali"},
		Correct:  1,
	},
	{
		Question: "Qui a écrit \"L'Étranger\" ?",
		Options:  []string{"Victor Hugo", "Albert Camus", "Jean-Paul Sartre", "Marcel Proust"},
		Correct:  1,
	},
	{
		Question: "La sérendipité désigne :",
		Options:  []string{"Une maladie rare", "Une découverte fortuite", "Un style artistique", "Un genre musical"},
		Correct:  1,
	},
}

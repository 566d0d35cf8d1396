package catalog

import "github.com/walterflo/pizzeria-service/internal/domain/model"

// classicPrices is the shared price table for the standard pizzas.
var classicPrices = map[model.Size]model.Cents{
	model.SizeQuarter: 250,
	model.SizeHalf:    480,
	model.SizeFull:    950,
}

// Default returns the production menu.
//
// Order matters: it is the order items appear on the storefront.
func Default() []model.Item {
	return []model.Item{
		{
			ID:          "fromage",
			Name:        "Fromage",
			Description: "Sauce tomate artisanale, mélange de fromages fondants.",
			Kind:        model.KindSized,
			Prices: map[model.Size]model.Cents{
				model.SizeQuarter: 200,
				model.SizeHalf:    400,
				model.SizeFull:    800,
			},
		},
		{
			ID:          "mozzarella",
			Name:        "Mozzarella",
			Description: "Base tomate, mozzarella de qualité supérieure, herbes de Provence.",
			Kind:        model.KindSized,
			Prices:      classicPrices,
		},
		{
			ID:          "jambon-fromage",
			Name:        "Jambon / Fromage",
			Description: "Classique indémodable : Jambon blanc supérieur et fromage fondant.",
			Kind:        model.KindSized,
			Prices:      classicPrices,
		},
		{
			ID:          "chevre-fromage",
			Name:        "Chèvre / Fromage",
			Description: "L’onctuosité du fromage de chèvre alliée à notre base tomate.",
			Kind:        model.KindSized,
			Prices:      classicPrices,
		},
		{
			ID:          "jambon-mozzarella",
			Name:        "Jambon / Mozzarella",
			Description: "Duo savoureux de jambon blanc et mozzarella fondante.",
			Kind:        model.KindSized,
			Prices:      classicPrices,
		},
		{
			ID:          "royale",
			Name:        "Royale",
			Description: "Jambon, fromage et champignons frais sur base tomate.",
			Kind:        model.KindSized,
			Prices:      classicPrices,
		},
		{
			ID:          "armenienne",
			Name:        "Arménienne",
			Description: "Spécialité aux saveurs épicées et généreuses.",
			Kind:        model.KindSized,
			Prices:      classicPrices,
		},
		{
			ID:          "pistou",
			Name:        "Pistou",
			Description: "L’Italie à votre table : basilic frais, ail et huile d’olive.",
			Kind:        model.KindSized,
			Prices:      classicPrices,
		},
		{
			ID:          "champignons-creme",
			Name:        "Champignons / Crème Fraîche",
			Description: "Base crème onctueuse, champignons frais de Paris.",
			Kind:        model.KindSized,
			Prices:      classicPrices,
			CreamBase:   true,
		},
		{
			ID:          "lardon",
			Name:        "La Lardon",
			Description: "Base crème fraîche, lardons et fromage.",
			Kind:        model.KindSized,
			Prices:      classicPrices,
			CreamBase:   true,
		},
		{
			ID:          "savoyarde",
			Name:        "Savoyarde",
			Description: "Base crème fraîche, lardons, reblochon et fromage.",
			Kind:        model.KindSized,
			Prices:      classicPrices,
			CreamBase:   true,
		},
		{
			ID:          "chevre-miel",
			Name:        "Chèvre / Miel Crème Fraîche",
			Description: "L’équilibre parfait sucré-salé sur une base crème.",
			Kind:        model.KindSized,
			Prices:      classicPrices,
			CreamBase:   true,
		},
		{
			ID:          "kebab-poulet",
			Name:        "Kebab ou Poulet Curry Crème",
			Description: "Viande kebab ou poulet au curry délicatement épicé.",
			Kind:        model.KindSized,
			Prices:      classicPrices,
			CreamBase:   true,
		},
		{
			ID:          "4-fromages",
			Name:        "4 Fromages Crème Fraîche",
			Description: "Un festival de saveurs pour les amateurs de fromage.",
			Kind:        model.KindSized,
			Prices:      classicPrices,
			CreamBase:   true,
		},
		{
			ID:          "thon-creme",
			Name:        "Thon Crème Fraîche",
			Description: "Thon émietté de qualité sur base crème onctueuse.",
			Kind:        model.KindSized,
			Prices:      classicPrices,
			CreamBase:   true,
		},
		{
			ID:          "panuozzo",
			Name:        "Panuozzo (Poulet Crispy ou Bagnat)",
			Description: "Sandwich italien traditionnel. Choix entre Poulet Crispy ou Bagnat.",
			Kind:        model.KindFixed,
			Price:       490,
		},
		{
			ID:          "chausson",
			Name:        "Chausson",
			Description: "Le chausson selon les goûts affichés.",
			Kind:        model.KindFixed,
			Price:       490,
		},
		{
			ID:    StudentMenuID,
			Name:  "MENU ÉTUDIANT",
			Kind:  model.KindBundle,
			Price: 690,
			Includes: []string{
				"1/2 Pizza au choix",
				"1 Boisson (33cl)",
				"1 Dessert",
			},
		},
	}
}

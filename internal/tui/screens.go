package tui

import (
	"fmt"
	"strings"

	"github.com/hy4ri/omni-select/internal/config"
	"github.com/hy4ri/omni-select/internal/tui/components"
	"github.com/hy4ri/omni-select/internal/tui/styles"
	"github.com/hy4ri/omni-select/pkg/dropdown"
)

// Screen names, in tab order.
const (
	ScreenBasic    = "basic"
	ScreenMulti    = "multi"
	ScreenCustom   = "custom"
	ScreenShowcase = "showcase"
)

// ScreenNames lists the screens accepted by --screen.
var ScreenNames = []string{ScreenBasic, ScreenMulti, ScreenCustom, ScreenShowcase}

// settings carries the config values every dropdown shares.
type settings struct {
	placement  dropdown.Placement
	width      int
	maxVisible int
	keys       dropdown.KeyMap
	styles     dropdown.Styles
}

func newSettings(cfg *config.Config) settings {
	keys := dropdown.DefaultKeyMap()
	if !cfg.UI.VimMode {
		keys = keys.WithoutVim()
	}
	return settings{
		placement:  dropdown.ParsePlacement(cfg.UI.Placement),
		width:      cfg.UI.Width,
		maxVisible: cfg.UI.MaxVisible,
		keys:       keys,
		styles:     styles.Dropdown(),
	}
}

// options returns the shared options for a dropdown with the given id.
func options[T any](s settings, id, placeholder string) dropdown.Options[T] {
	keys := s.keys
	st := s.styles
	return dropdown.Options[T]{
		ID:          id,
		Placeholder: placeholder,
		Placement:   s.placement,
		Width:       s.width,
		MaxVisible:  s.maxVisible,
		Keys:        &keys,
		Styles:      &st,
	}
}

// wider returns w, or least when w is narrower.
func wider(w, least int) int {
	if w < least {
		return least
	}
	return w
}

func buildScreens(s settings) []*components.Screen {
	return []*components.Screen{
		basicScreen(s),
		multiScreen(s),
		customScreen(s),
		showcaseScreen(s),
	}
}

func basicScreen(s settings) *components.Screen {
	fruit := dropdown.New(fruitNames, options[string](s, "basic.fruit", "Select a fruit"))

	language := dropdown.New(languages, options[option](s, "basic.language", "Select a language"))

	return components.NewScreen("Basic Examples", "Plain strings and {label, value} records",
		components.NewSection("Simple String Array", "", fruit, func(v []string) string {
			return "You selected: " + v[0]
		}),
		components.NewSection("Object Array", "", language, func(v []option) string {
			return fmt.Sprintf("You selected: %s (%s)", v[0].Label, v[0].Value)
		}),
	)
}

func multiScreen(s settings) *components.Screen {
	colorOpts := options[string](s, "multi.colors", "Select colors")
	colorOpts.Multiple = true
	color := dropdown.New(colors, colorOpts)

	techOpts := options[technology](s, "multi.technologies", "Select technologies")
	techOpts.Multiple = true
	techOpts.Search = true
	techOpts.SearchPlaceholder = "Search technologies..."
	tech := dropdown.New(technologies, techOpts)

	return components.NewScreen("Multi-Select Examples", "space toggles, enter toggles and keeps the list open",
		components.NewSection("Select Multiple Colors", "", color, func(v []string) string {
			return strings.Join(v, " • ")
		}),
		components.NewSection("With Search", "Type to filter", tech, func(v []technology) string {
			lines := make([]string, 0, len(v))
			for _, t := range v {
				lines = append(lines, fmt.Sprintf("• %s (%s)", t.Label, t.Category))
			}
			return strings.Join(lines, "\n")
		}),
	)
}

func customScreen(s settings) *components.Screen {
	userOpts := options[user](s, "custom.user", "Select a user")
	userOpts.LabelField = "name"
	userOpts.ValueField = "id"
	userOpts.Width = wider(s.width, 40)
	userOpts.RenderItem = func(u user, selected bool) string {
		name := styles.UserName.Render(u.Name)
		if selected {
			name = styles.UserSelected.Render(u.Name)
		}
		return u.Avatar + " " + name + " " + styles.UserMeta.Render(u.Role)
	}
	userDD := dropdown.New(users, userOpts)

	productOpts := options[product](s, "custom.product", "Select a product")
	productOpts.LabelField = "title"
	productOpts.ValueField = "sku"
	productOpts.Search = true
	productOpts.SearchPlaceholder = "Search products..."
	productOpts.Width = wider(s.width, 52)
	productOpts.RenderItem = renderProduct
	productDD := dropdown.New(products, productOpts)

	return components.NewScreen("Custom Type Examples", "Records mapped with label and value fields",
		components.NewSection("User Selection", "", userDD, func(v []user) string {
			u := v[0]
			return fmt.Sprintf("Selected User:\n%s - %s\nRole: %s", u.Name, u.Email, u.Role)
		}),
		components.NewSection("Product Selection", "", productDD, func(v []product) string {
			p := v[0]
			status := "In Stock"
			if !p.InStock {
				status = "Out of Stock"
			}
			return fmt.Sprintf("Selected Product:\n%s (SKU: %s)\nPrice: %s\nStatus: %s",
				p.Title, p.SKU, formatPrice(p.Price), status)
		}),
	)
}

func showcaseScreen(s settings) *components.Screen {
	fruit := dropdown.New(fruits, options[option](s, "showcase.fruit", "Select a fruit"))

	countryOpts := options[string](s, "showcase.countries", "Select countries")
	countryOpts.Multiple = true
	countryOpts.Search = true
	countryOpts.SearchPlaceholder = "Search countries..."
	country := dropdown.New(countries, countryOpts)

	userOpts := options[user](s, "showcase.user", "Select a user")
	userOpts.LabelField = "name"
	userOpts.ValueField = "id"
	userOpts.Search = true
	userOpts.SearchPlaceholder = "Search by name..."
	userOpts.Width = wider(s.width, 44)
	userOpts.RenderItem = func(u user, selected bool) string {
		name := styles.UserName.Render(u.Name)
		if selected {
			name = styles.UserSelected.Render(u.Name)
		}
		return name + " " + styles.UserMeta.Render(u.Department)
	}
	userDD := dropdown.New(users, userOpts)

	disabledOpts := options[option](s, "showcase.disabled", "This is disabled")
	disabledOpts.Disabled = true
	disabled := dropdown.New(fruits, disabledOpts)

	styledOpts := options[option](s, "showcase.styled", "Custom styled dropdown")
	styledOpts.Style = &styles.StyledTrigger
	styledOpts.DropdownStyle = &styles.StyledMenu
	styledOpts.ItemStyle = &styles.StyledItem
	styled := dropdown.New(fruits, styledOpts)

	return components.NewScreen("Omni Select", "All features on one screen",
		components.NewSection("Basic Dropdown", "", fruit, func(v []option) string {
			return "Selected: " + v[0].Label
		}),
		components.NewSection("Multi-select with Search", "", country, nil),
		components.NewSection("Custom Object", "", userDD, func(v []user) string {
			return "Selected: " + v[0].Name + "\n" + styles.ResultDetail.Render(v[0].Email)
		}),
		components.NewSection("Disabled State", "", disabled, nil),
		components.NewSection("Custom Styling", "", styled, nil),
	)
}

func renderProduct(p product, selected bool) string {
	title := styles.UserName.Render(p.Title)
	if selected {
		title = styles.UserSelected.Render(p.Title)
	}
	row := title + " " + styles.PriceTag.Render(formatPrice(p.Price)+" • "+p.Category)
	if !p.InStock {
		row += " " + styles.OutOfStock.Render("Out of Stock")
	}
	return row
}

func formatPrice(price float64) string {
	return fmt.Sprintf("$%.0f", price)
}

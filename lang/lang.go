package lang

import "fmt"

const (
	En = "en"
	Uz = "uz"
)

var messages = map[string]map[string]string{
	En: {
		"title_start_order":          "Start Order",
		"title_choose_entree":        "Choose Entree",
		"title_choose_side_dish":     "Choose Side Dish",
		"title_choose_accompaniment": "Choose Accompaniment",
		"title_order_checkout":       "Order Checkout",

		"welcome":        "Welcome to Lunch Tray! Build your lunch in three quick steps.",
		"start_order":    "Start Order",
		"choose_option":  "Pick one option, then press Next.",
		"next":           "Next",
		"cancel":         "Cancel",
		"submit":         "Submit",
		"back":           "⬅ Back",
		"order_summary":  "Order Summary",
		"subtotal":       "Subtotal: %s",
		"tax":            "Tax: %s",
		"total":          "Total: %s",
		"item_line":      "%s — %s",
		"option_line":    "%s — %s\n%s (%d Cal)",
		"selected":       "✅ ",
		"receipt":        "Order %s submitted. Total charged: %s. Enjoy your lunch!",
		"order_canceled": "Order canceled.",
		"unavailable":    "That action is not available here.",
		"need_selection": "Please make a selection first.",
		"unknown_item":   "That item is no longer on the menu.",
		"wrong_menu":     "That item belongs to another step. Showing the current one.",
	},
	Uz: {
		"title_start_order":          "Buyurtma boshlash",
		"title_choose_entree":        "Asosiy taomni tanlang",
		"title_choose_side_dish":     "Garnirni tanlang",
		"title_choose_accompaniment": "Qo'shimchani tanlang",
		"title_order_checkout":       "Buyurtmani rasmiylashtirish",

		"welcome":        "Lunch Tray'ga xush kelibsiz! Tushligingizni uch qadamda yig'ing.",
		"start_order":    "Buyurtma boshlash",
		"choose_option":  "Bittasini tanlang va «Keyingi» tugmasini bosing.",
		"next":           "Keyingi",
		"cancel":         "Bekor qilish",
		"submit":         "Tasdiqlash",
		"back":           "⬅ Orqaga",
		"order_summary":  "Buyurtma",
		"subtotal":       "Oraliq jami: %s",
		"tax":            "Soliq: %s",
		"total":          "Jami: %s",
		"item_line":      "%s — %s",
		"option_line":    "%s — %s\n%s (%d kkal)",
		"selected":       "✅ ",
		"receipt":        "%s raqamli buyurtma qabul qilindi. Jami: %s. Yoqimli ishtaha!",
		"order_canceled": "Buyurtma bekor qilindi.",
		"unavailable":    "Bu amal hozir mavjud emas.",
		"need_selection": "Avval tanlov qiling.",
		"unknown_item":   "Bu taom menyuda yo'q.",
		"wrong_menu":     "Bu taom boshqa bosqichga tegishli. Joriy bosqich ko'rsatildi.",
	},
}

// Supported reports whether langCode has its own translations.
func Supported(langCode string) bool {
	_, ok := messages[langCode]
	return ok
}

// T returns the translated message for key. Unknown languages fall back to English, unknown keys to the key itself.
func T(langCode, key string, args ...interface{}) string {
	m, ok := messages[langCode]
	if !ok {
		m = messages[En]
	}
	s, ok := m[key]
	if !ok {
		s, ok = messages[En][key]
		if !ok {
			return key
		}
	}
	if len(args) == 0 {
		return s
	}
	return fmt.Sprintf(s, args...)
}

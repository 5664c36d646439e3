package categorizer

import "finsight/internal/models"

// categoryKeywords maps categories to lowercase substrings. It is a slice,
// not a map: the first (category, keyword) pair to match wins, so both the
// category order and the keyword order within a category are part of the
// contract. A keyword may appear under several categories ("gas", "book");
// the earlier category takes it.
var categoryKeywords = []struct {
	category models.Category
	keywords []string
}{
	{models.CategoryFoodDining, []string{
		"food", "restaurant", "swiggy", "zomato", "dominos", "mcdonalds",
		"starbucks", "grocery", "supermarket", "cafe", "dining", "meal",
		"pizza", "burger", "coffee", "tea", "snack", "lunch", "dinner",
	}},
	{models.CategoryTransportation, []string{
		"uber", "ola", "taxi", "cab", "petrol", "diesel", "fuel", "gas",
		"bus", "train", "metro", "parking", "toll", "transport", "ride",
	}},
	{models.CategoryShopping, []string{
		"amazon", "flipkart", "myntra", "shopping", "mall", "store", "shop",
		"clothes", "fashion", "electronics", "book", "purchase", "order",
	}},
	{models.CategoryBillsUtilities, []string{
		"electricity", "water", "internet", "phone", "bill", "utility",
		"gas", "rent", "insurance", "credit card", "premium", "subscription",
	}},
	{models.CategoryEntertainment, []string{
		"netflix", "spotify", "movie", "cinema", "game", "gaming", "entertainment",
		"concert", "theater", "streaming", "music", "video", "show",
	}},
	{models.CategoryHealthcare, []string{
		"hospital", "doctor", "medicine", "pharmacy", "health", "medical",
		"clinic", "dental", "eye", "prescription", "treatment",
	}},
	{models.CategoryEducation, []string{
		"school", "college", "university", "course", "book", "education",
		"tuition", "fee", "student", "learning", "training",
	}},
	{models.CategoryTravel, []string{
		"hotel", "flight", "travel", "vacation", "trip", "booking",
		"airline", "resort", "tourism", "journey",
	}},
	{models.CategoryInvestments, []string{
		"investment", "mutual fund", "stock", "savings", "sip", "equity",
		"portfolio", "fund", "trading", "brokerage",
	}},
	{models.CategoryIncome, []string{
		"salary", "bonus", "income", "credit", "deposit", "refund",
		"cashback", "interest", "dividend", "freelance", "payment",
	}},
}

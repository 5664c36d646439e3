package advice

// Canned template pools. Picks are random samples, but everything routed
// here is otherwise deterministic rule output; no model calls anywhere.
var suggestionTemplates = map[string][]string{
	"high_food_spending": {
		"Your food expenses are high. Try meal planning and cooking at home to save 30-40% on food costs.",
		"Consider batch cooking on weekends to reduce weekday food expenses and save time.",
		"Make a grocery list and stick to it to avoid impulse purchases at the supermarket.",
		"Limit eating out to once or twice a week and cook more meals at home.",
	},
	"high_transport_spending": {
		"Your transportation costs are significant. Consider carpooling or using public transport to reduce fuel expenses.",
		"Track your fuel consumption and plan routes efficiently to minimize unnecessary trips.",
		"For short distances, consider walking or cycling to save money and stay healthy.",
		"Use public transportation or ride-sharing services for regular commutes.",
	},
	"high_shopping_spending": {
		"Your shopping expenses are high. Implement a 24-hour rule before making non-essential purchases.",
		"Unsubscribe from marketing emails to reduce impulse buying from online stores.",
		"Use cash or debit cards for shopping to avoid credit card interest and overspending.",
		"Create a shopping list and stick to it to avoid unnecessary purchases.",
	},
	"high_entertainment_spending": {
		"Look for free or low-cost entertainment alternatives like public libraries, free events, or streaming services.",
		"Review your subscription services and cancel unused ones to save money monthly.",
		"Consider sharing subscription costs with family or friends for streaming services.",
		"Look for free community events and activities in your area.",
	},
	"low_savings": {
		"Set up automatic transfers to a savings account on payday to build your emergency fund.",
		"Start with saving 10% of your income and gradually increase it to 20%.",
		"Track your expenses daily to identify areas where you can cut back and save more.",
		"Open a high-yield savings account to earn better returns on your savings.",
	},
	"no_investments": {
		"Start investing in low-risk options like index funds or SIPs to grow your wealth over time.",
		"Open a high-yield savings account or fixed deposit to earn better returns on your savings.",
		"Consider consulting a financial advisor to create an investment strategy based on your goals.",
		"Start with small amounts in mutual funds or SIPs to build investment habits.",
	},
	"budget_optimization": {
		"Create a detailed monthly budget and track your spending against it.",
		"Use the 50/30/20 rule: 50% for needs, 30% for wants, 20% for savings and debt repayment.",
		"Use budgeting apps to track your expenses and stay within your financial goals.",
		"Review your budget monthly and adjust based on your spending patterns.",
	},
	"general_tips": {
		"Use budgeting apps to track your expenses and stay within your financial goals.",
		"Set specific financial goals like building an emergency fund or saving for a vacation.",
		"Educate yourself about personal finance through books, podcasts, or online courses.",
		"Build an emergency fund of 3-6 months of expenses before making major investments.",
		"Pay off high-interest debt first before focusing on investments or savings.",
	},
}

var chatTemplates = map[string][]string{
	"budget": {
		"Here's a simple budgeting approach: use the 50/30/20 rule - 50% for needs, 30% for wants, and 20% for savings and debt repayment.",
		"Start by tracking all your expenses for a month to understand where your money goes, then create a realistic budget.",
		"Set specific financial goals and allocate your income accordingly. Remember, a budget is a plan for your money.",
		"Use budgeting apps to track your expenses and stay within your financial goals.",
	},
	"saving": {
		"Start small - even saving a little every day adds up over the year. Set up automatic transfers to make it easier.",
		"Build an emergency fund first (3-6 months of expenses), then focus on other savings goals.",
		"Consider high-yield savings accounts or fixed deposits for better returns on your savings.",
		"Set up automatic transfers to a savings account on payday to build your emergency fund.",
	},
	"investing": {
		"Start with low-risk options like index funds or SIPs. Remember, time in the market beats timing the market.",
		"Diversify your investments across different asset classes to reduce risk.",
		"Consider your risk tolerance and investment horizon before making investment decisions.",
		"Start with small amounts in mutual funds or SIPs to build investment habits.",
	},
	"debt": {
		"Focus on paying high-interest debt first (like credit cards) before low-interest debt.",
		"Consider debt consolidation if you have multiple high-interest loans.",
		"Create a debt repayment plan and stick to it. Every extra payment helps reduce the total interest.",
		"Pay more than the minimum payment on credit cards to reduce interest charges.",
	},
	"expenses": {
		"Track your expenses daily using apps or a simple spreadsheet to identify spending patterns.",
		"Use the 24-hour rule for non-essential purchases - wait a day before buying.",
		"Look for ways to reduce recurring expenses like subscriptions you don't use.",
		"Create a shopping list and stick to it to avoid unnecessary purchases.",
	},
	"food_saving": {
		"Plan your meals for the week and make a grocery list to avoid impulse purchases.",
		"Cook in bulk and freeze portions for busy days to save time and money.",
		"Buy generic brands for basic items - they're often just as good as name brands.",
		"Limit eating out to special occasions and cook more meals at home.",
	},
	"transport_saving": {
		"Carpool with colleagues or friends to split fuel costs.",
		"Use public transportation when possible - it's much cheaper than driving.",
		"Consider walking or cycling for short distances to save money and stay healthy.",
		"Plan your routes efficiently to minimize fuel consumption.",
	},
	"shopping_saving": {
		"Wait for sales and use coupons when shopping for non-essential items.",
		"Unsubscribe from marketing emails to reduce impulse buying.",
		"Use cash or debit cards for shopping to avoid credit card interest.",
		"Buy quality items that last longer instead of cheap items that need frequent replacement.",
	},
	"general": {
		"Financial success comes from consistent small actions over time, not big changes overnight.",
		"Educate yourself about personal finance through books, podcasts, or online courses.",
		"Set SMART financial goals: Specific, Measurable, Achievable, Relevant, and Time-bound.",
		"Build an emergency fund of 3-6 months of expenses before making major investments.",
	},
}

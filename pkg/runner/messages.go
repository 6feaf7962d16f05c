package runner

// Console wording. Prompts are written without a trailing newline.
const (
	Separator = "------------------------------------------------------"

	PromptRole        = "Choose your role (1/2/3): "
	MsgInvalidRole    = "Invalid role. Please enter 1, 2, or 3."
	MsgGoodbye        = "Exiting the program. Goodbye!"
	PromptCurrency    = "Please choose the currency you will pay in (dollars/shekels), or type exit: "
	PromptCurrencyBad = "-->Invalid input. Please select currency (dollars/shekels): "
	PromptAmount      = "Please insert payment amount in %s: "
	MsgZeroAmount     = "Inserted amount cannot be zero. Please enter a valid amount."
	MsgBadAmount      = "Invalid input. Please enter a valid amount."
	MsgInserted       = "Inserted %s Dollars"
	MsgBalance        = "Your balance now is %s Dollars"
	PromptItem        = "Please select an item from the inventory (type 'cancel' to abort): "
	MsgBadItem        = "Invalid item. Please select from the displayed inventory or type 'cancel' to abort."
	MsgSelected       = "Selected item: %s"
	MsgRefunded       = "Transaction canceled. Refunded amount: %s"

	PromptPassword    = "Enter the administrator password: "
	PromptAdminChoice = "Enter your choice (1/2/3): "
	PromptRefillItem  = "Enter the name of the item to refill: "
	PromptRefillQty   = "Enter the quantity to add: "
	PromptRefillPrice = "Enter the price of the item: "
	MsgAdminInvalid   = "Invalid choice. Please enter 1, 2, or 3."
	MsgAdminExit      = "Exiting the administrator menu. Returning to the main menu."
)

// DefaultBanner greets the user when the runner starts.
const DefaultBanner = Separator + "\n" +
	"-         Welcome to the Vending Machine!            -\n" +
	Separator

const roleMenu = "1. Customer\n2. Administrator\n3. Exit\n" + Separator

const adminMenu = Separator + "\n\nAdministrator Menu:\n1. Reset Machine\n2. Refill Stock\n3. Exit\n" + Separator

package api

type credentialsInput struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type forgotPasswordInput struct {
	Name string `json:"name"`
}

type recordInput struct {
	Date     string `json:"date"`
	Contacts int    `json:"contacts"`
	Demos    int    `json:"demos"`
	Plans    int    `json:"plans"`
}

type saleInput struct {
	Product  string `json:"product"`
	Date     string `json:"date"`
	Quantity int    `json:"quantity"`
}

type costInput struct {
	Date    string  `json:"date"`
	Concept string  `json:"concept"`
	Amount  float64 `json:"amount"`
}

type noteInput struct {
	Text string `json:"text"`
}

type productInput struct {
	UnitCost  float64 `json:"unit_cost"`
	UnitPrice float64 `json:"unit_price"`
	Points    float64 `json:"points"`
}

type joinInput struct {
	Leader string `json:"leader"`
}

type approveInput struct {
	Member string `json:"member"`
}

type resetPasswordInput struct {
	User        string `json:"user"`
	NewPassword string `json:"new_password"`
}

type promoteInput struct {
	User string `json:"user"`
}

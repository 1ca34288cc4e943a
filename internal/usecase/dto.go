package usecase

type SubmitSignupInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Social  string `json:"social,omitempty"`
}

type SubmitSignupOutput struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Social  string `json:"social,omitempty"`
	Score   int    `json:"score"`
	Status  string `json:"status"`
}

type CaptureLeadInput struct {
	Ref        string `json:"ref"`
	Salutation string `json:"salutation"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Address    string `json:"address"`

	WillingToSell    *string `json:"willing_to_sell"`
	PriceExpectation *string `json:"price_expectation"`
	MoveTiming       *string `json:"move_timing"`
}

type CaptureLeadOutput struct {
	ID string `json:"id"`
}

type ApplyFollowupInput struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	FollowupIntent    string `json:"followup_intent"`
	FollowupValue     string `json:"followup_value"`
	WantsOwnHomepilot string `json:"wants_own_homepilot,omitempty"`
}

type ModerateSubmissionInput struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

package metadomain

// Action é um par tipo/valor das listas actions e action_values do Meta.
// Os valores chegam como string.
type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// Insight é uma linha do endpoint /insights com level=campaign,
// time_increment=1 e breakdown por publisher_platform
type Insight struct {
	AccountID         string   `json:"account_id"`
	CampaignID        string   `json:"campaign_id"`
	CampaignName      string   `json:"campaign_name"`
	DateStart         string   `json:"date_start"`
	DateStop          string   `json:"date_stop"`
	PublisherPlatform string   `json:"publisher_platform"`
	Impressions       string   `json:"impressions"`
	Reach             string   `json:"reach"`
	Clicks            string   `json:"clicks"`
	Spend             string   `json:"spend"`
	CTR               string   `json:"ctr"`
	CPC               string   `json:"cpc"`
	CPM               string   `json:"cpm"`
	Actions           []Action `json:"actions"`
	ActionValues      []Action `json:"action_values"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next,omitempty"`
}

type InsightsResponse struct {
	Data   []Insight `json:"data"`
	Paging Paging    `json:"paging"`
}

// ConversionActionTypes são as ações somadas como conversões
var ConversionActionTypes = map[string]bool{
	"purchase":                             true,
	"lead":                                 true,
	"complete_registration":                true,
	"offsite_conversion.fb_pixel_purchase": true,
	"offsite_conversion.fb_pixel_lead":     true,
	"onsite_conversion.purchase":           true,
}

// RevenueActionTypes são os action_values usados como receita. O Meta repete a
// mesma compra em mais de um tipo, então só o primeiro encontrado é usado.
var RevenueActionTypes = []string{
	"purchase",
	"offsite_conversion.fb_pixel_purchase",
	"onsite_conversion.purchase",
}

// Ações de interação mapeadas para as métricas sociais
const (
	ActionPostEngagement = "post_engagement"
	ActionReaction       = "post_reaction"
	ActionComment        = "comment"
	ActionShare          = "post"
	ActionSave           = "onsite_conversion.post_save"
)

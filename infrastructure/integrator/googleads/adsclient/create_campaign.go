package adsclient

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	gadomain "github.com/vfg2006/mcc-manager-api/infrastructure/integrator/googleads/domain"
)

// IDs de language constant do Google Ads para os códigos suportados
var languageConstantIDs = map[string]string{
	"en": "1000",
	"de": "1001",
	"fr": "1002",
	"es": "1003",
	"nl": "1010",
}

var quarterHourNames = map[int]string{
	0:  "ZERO",
	15: "FIFTEEN",
	30: "THIRTY",
	45: "FORTY_FIVE",
}

// CreateSearchCampaign cria em uma única mutação o orçamento, a campanha de
// pesquisa com Maximize Clicks, o grupo de anúncios, o anúncio responsivo,
// as palavras-chave e os critérios de segmentação.
func (c *GoogleAdsClient) CreateSearchCampaign(customerID string, spec *gadomain.CampaignSpec) (*gadomain.CreatedCampaign, error) {
	budgetResource := fmt.Sprintf("customers/%s/campaignBudgets/-1", customerID)
	campaignResource := fmt.Sprintf("customers/%s/campaigns/-2", customerID)
	adGroupResource := fmt.Sprintf("customers/%s/adGroups/-3", customerID)

	operations := []interface{}{
		map[string]interface{}{
			"campaignBudgetOperation": map[string]interface{}{
				"create": map[string]interface{}{
					"resourceName":     budgetResource,
					"name":             fmt.Sprintf("Budget - %s", spec.Name),
					"amountMicros":     fmt.Sprintf("%d", spec.BudgetAmountMicros),
					"deliveryMethod":   "STANDARD",
					"explicitlyShared": false,
				},
			},
		},
		map[string]interface{}{
			"campaignOperation": map[string]interface{}{
				"create": map[string]interface{}{
					"resourceName":           campaignResource,
					"name":                   spec.Name,
					"status":                 "ENABLED",
					"advertisingChannelType": "SEARCH",
					"campaignBudget":         budgetResource,
					// Maximize Clicks sem teto de CPC
					"targetSpend": map[string]interface{}{},
					"networkSettings": map[string]interface{}{
						"targetGoogleSearch":   true,
						"targetSearchNetwork":  true,
						"targetContentNetwork": false,
					},
				},
			},
		},
	}

	operations = append(operations, campaignCriterionOperations(customerID, campaignResource, spec)...)

	operations = append(operations, map[string]interface{}{
		"adGroupOperation": map[string]interface{}{
			"create": map[string]interface{}{
				"resourceName": adGroupResource,
				"name":         "Ad Group 1",
				"campaign":     campaignResource,
				"status":       "ENABLED",
				"type":         "SEARCH_STANDARD",
			},
		},
	})

	for _, keyword := range spec.Keywords {
		operations = append(operations, map[string]interface{}{
			"adGroupCriterionOperation": map[string]interface{}{
				"create": map[string]interface{}{
					"adGroup": adGroupResource,
					"status":  "ENABLED",
					"keyword": map[string]interface{}{
						"text":      keyword,
						"matchType": "BROAD",
					},
				},
			},
		})
	}

	operations = append(operations, map[string]interface{}{
		"adGroupAdOperation": map[string]interface{}{
			"create": map[string]interface{}{
				"adGroup": adGroupResource,
				"status":  "ENABLED",
				"ad":      responsiveSearchAd(spec),
			},
		},
	})

	responses, err := c.mutate(customerID, operations)
	if err != nil {
		return nil, err
	}

	created, err := extractCreatedCampaign(responses)
	if err != nil {
		return nil, err
	}
	created.CampaignName = spec.Name

	logrus.WithFields(logrus.Fields{
		"customer_id": customerID,
		"campaign_id": created.CampaignID,
	}).Info("Campanha criada com sucesso")

	return created, nil
}

func campaignCriterionOperations(customerID, campaignResource string, spec *gadomain.CampaignSpec) []interface{} {
	operations := make([]interface{}, 0)

	criterion := func(create map[string]interface{}) map[string]interface{} {
		create["campaign"] = campaignResource
		return map[string]interface{}{
			"campaignCriterionOperation": map[string]interface{}{
				"create": create,
			},
		}
	}

	for _, locationID := range spec.LocationIDs {
		operations = append(operations, criterion(map[string]interface{}{
			"location": map[string]interface{}{
				"geoTargetConstant": fmt.Sprintf("geoTargetConstants/%s", locationID),
			},
		}))
	}

	languageID, ok := languageConstantIDs[spec.LanguageCode]
	if !ok {
		languageID = languageConstantIDs["en"]
	}
	operations = append(operations, criterion(map[string]interface{}{
		"language": map[string]interface{}{
			"languageConstant": fmt.Sprintf("languageConstants/%s", languageID),
		},
	}))

	for _, slot := range spec.Schedule {
		create := map[string]interface{}{
			"adSchedule": map[string]interface{}{
				"dayOfWeek":   slot.DayOfWeek,
				"startHour":   slot.StartHour,
				"startMinute": quarterHourName(slot.StartMinute),
				"endHour":     slot.EndHour,
				"endMinute":   quarterHourName(slot.EndMinute),
			},
		}
		if slot.BidModifier != 0 {
			create["bidModifier"] = 1.0 + float64(slot.BidModifier)/100.0
		}
		operations = append(operations, criterion(create))
	}

	// MOBILE_ONLY é expresso zerando o lance de desktop e tablet
	if spec.MobileOnly {
		for _, device := range []string{"DESKTOP", "TABLET"} {
			operations = append(operations, criterion(map[string]interface{}{
				"device": map[string]interface{}{
					"type": device,
				},
				"bidModifier": 0,
			}))
		}
	}

	return operations
}

func responsiveSearchAd(spec *gadomain.CampaignSpec) map[string]interface{} {
	headlines := make([]map[string]interface{}, 0, len(spec.Headlines))
	for _, headline := range spec.Headlines {
		headlines = append(headlines, map[string]interface{}{"text": headline})
	}

	descriptions := make([]map[string]interface{}, 0, len(spec.Descriptions))
	for _, description := range spec.Descriptions {
		descriptions = append(descriptions, map[string]interface{}{"text": description})
	}

	rsa := map[string]interface{}{
		"headlines":    headlines,
		"descriptions": descriptions,
	}
	if spec.Path1 != "" {
		rsa["path1"] = spec.Path1
	}
	if spec.Path2 != "" {
		rsa["path2"] = spec.Path2
	}

	ad := map[string]interface{}{
		"finalUrls":          []string{spec.FinalURL},
		"responsiveSearchAd": rsa,
	}
	if spec.FinalMobileURL != "" {
		ad["finalMobileUrls"] = []string{spec.FinalMobileURL}
	}

	return ad
}

func extractCreatedCampaign(responses []json.RawMessage) (*gadomain.CreatedCampaign, error) {
	created := &gadomain.CreatedCampaign{}

	for _, raw := range responses {
		var response struct {
			CampaignBudgetResult *struct {
				ResourceName string `json:"resourceName"`
			} `json:"campaignBudgetResult"`
			CampaignResult *struct {
				ResourceName string `json:"resourceName"`
			} `json:"campaignResult"`
			AdGroupResult *struct {
				ResourceName string `json:"resourceName"`
			} `json:"adGroupResult"`
			AdGroupAdResult *struct {
				ResourceName string `json:"resourceName"`
			} `json:"adGroupAdResult"`
		}
		if err := json.Unmarshal(raw, &response); err != nil {
			return nil, err
		}

		if response.CampaignBudgetResult != nil {
			created.BudgetID = lastPathSegment(response.CampaignBudgetResult.ResourceName)
		}
		if response.CampaignResult != nil {
			created.CampaignID = lastPathSegment(response.CampaignResult.ResourceName)
		}
		if response.AdGroupResult != nil {
			created.AdGroupID = lastPathSegment(response.AdGroupResult.ResourceName)
		}
		// O resource name de adGroupAd termina em {adGroupId}~{adId}
		if response.AdGroupAdResult != nil {
			segment := lastPathSegment(response.AdGroupAdResult.ResourceName)
			if idx := strings.LastIndex(segment, "~"); idx >= 0 {
				created.AdID = segment[idx+1:]
			} else {
				created.AdID = segment
			}
		}
	}

	if created.CampaignID == "" {
		return nil, fmt.Errorf("resposta de mutação sem resultado de campanha")
	}

	return created, nil
}

func quarterHourName(minute int) string {
	if name, ok := quarterHourNames[minute]; ok {
		return name
	}
	return "ZERO"
}

func lastPathSegment(resourceName string) string {
	parts := strings.Split(resourceName, "/")
	return parts[len(parts)-1]
}

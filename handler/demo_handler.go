package handler

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/YuxiangJiangCT/billassistant/dto"
)

// Fixed sample shown by the frontend demo before a user uploads anything.
var demoBill = dto.BillSummary{
	Provider:            "NYC Imaging Center",
	ServiceDate:         "2025-05-12",
	Procedure:           "MRI Brain (CPT 70551)",
	BilledAmount:        1400,
	AllowedAmount:       900,
	InsurerPaid:         620,
	PrintedOwe:          780,
	ShouldOwe:           180,
	EstimatedOvercharge: 600,
	Issues: []string{
		"Potential duplicate facility fee for the same date of service.",
		"\"Out-of-network\" label appears inconsistent with typical directory data.",
		"Billed amount is roughly 2x the usual range for this MRI in this ZIP code.",
	},
}

var demoActionPlan = dto.ActionPlanResponse{
	PhoneScript: "Hi, I received a bill for an MRI on May 12, 2025. " +
		"The bill says I owe $780, but based on my understanding of my plan, " +
		"I believe I should owe about $180. " +
		"Can you help me review the allowed amount and coinsurance " +
		"for CPT 70551 at NYC Imaging Center?",
	EmailTemplate: "Subject: Request to review MRI bill for possible overcharge\n\n" +
		"Hello,\n\n" +
		"I am writing about a bill for an MRI on May 12, 2025 at NYC Imaging Center. " +
		"The bill lists $780 as my responsibility, but based on my plan's typical " +
		"coinsurance, I believe the correct amount should be closer to $180. " +
		"Could you please review the allowed amount and my cost share for CPT 70551 " +
		"and let me know if an adjustment is possible?\n\n" +
		"Thank you.",
	Checklist: []string{
		"Download your Explanation of Benefits (EOB) for this service.",
		"Request an itemized bill from the provider.",
		"Write down the date, time, and name of anyone you speak with.",
		"Save any emails or letters you send or receive.",
	},
}

type DemoHandler struct {
	indexPath string
}

func NewDemoHandler(indexPath string) *DemoHandler {
	return &DemoHandler{indexPath: indexPath}
}

// Index serves the static frontend page.
func (h *DemoHandler) Index(c *gin.Context) {
	if h.indexPath == "" {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "index not configured"})
		return
	}
	if _, err := os.Stat(h.indexPath); err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "index not found"})
		return
	}
	c.File(h.indexPath)
}

func (h *DemoHandler) Health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func (h *DemoHandler) DecodedBill(c *gin.Context) {
	c.JSON(http.StatusOK, demoBill)
}

func (h *DemoHandler) ActionPlan(c *gin.Context) {
	c.JSON(http.StatusOK, demoActionPlan)
}

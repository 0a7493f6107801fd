package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"studioops/internal/logging"
	"studioops/internal/sim"
	"studioops/pkg/models"
)

// ListComplaintsHandler returns the full ticket queue.
func ListComplaintsHandler(session *sim.Session) echo.HandlerFunc {
	return func(c echo.Context) error {
		complaints := session.Complaints()

		if status := c.QueryParam("status"); status != "" {
			filtered := make([]models.Complaint, 0, len(complaints))
			for _, complaint := range complaints {
				if string(complaint.Status) == status {
					filtered = append(filtered, complaint)
				}
			}
			complaints = filtered
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"complaints": complaints,
		})
	}
}

// ComplaintStatsHandler summarizes the ticket queue.
func ComplaintStatsHandler(session *sim.Session) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, session.ComplaintStatistics())
	}
}

// AssignComplaintHandler manually assigns a ticket to a support agent.
func AssignComplaintHandler(session *sim.Session) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		logger := logging.LogWithRequestID(reqID)

		var req models.AssignComplaintRequest
		if ok, respErr := bindAndValidate(c, reqID, &req); !ok {
			return respErr
		}

		complaintID := c.Param("id")
		if err := session.AssignComplaint(complaintID, req.EmployeeID); err != nil {
			return errorJSON(c, reqID, err)
		}

		logger.Info("Complaint assigned", map[string]interface{}{
			"complaint_id": complaintID,
			"employee_id":  req.EmployeeID,
		})
		return c.JSON(http.StatusOK, map[string]string{
			"complaint_id": complaintID,
			"status":       "assigned",
		})
	}
}

// UnassignComplaintHandler takes a ticket off its agent.
func UnassignComplaintHandler(session *sim.Session) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		complaintID := c.Param("id")
		if err := session.UnassignComplaint(complaintID); err != nil {
			return errorJSON(c, reqID, err)
		}

		return c.JSON(http.StatusOK, map[string]string{
			"complaint_id": complaintID,
			"status":       "unassigned",
		})
	}
}

// AutoAssignHandler distributes all unassigned pending tickets across the
// support staff in one greedy pass.
func AutoAssignHandler(session *sim.Session) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		logger := logging.LogWithRequestID(reqID)

		assigned, complaints := session.AutoAssignComplaints()
		logger.Info("Complaints auto-assigned", map[string]interface{}{"assigned": assigned})

		return c.JSON(http.StatusOK, models.AutoAssignResponse{
			Assigned:   assigned,
			Complaints: complaints,
		})
	}
}

package utils

import "github.com/gin-gonic/gin"

// Identity accessors. The auth middleware resolves the token into
// (subjectId, role) on the gin context before any handler runs; the
// role-scoped getters return 0 when the caller holds a different role.

func currentSubjectID(c *gin.Context) uint {
	v, _ := c.Get("subjectId")
	switch id := v.(type) {
	case uint:
		return id
	case int:
		return uint(id)
	case int64:
		return uint(id)
	case float64:
		return uint(id)
	default:
		return 0
	}
}

func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func CurrentUserID(c *gin.Context) uint {
	if CurrentRole(c) != RoleCustomer {
		return 0
	}
	return currentSubjectID(c)
}

func CurrentRestaurantID(c *gin.Context) uint {
	if CurrentRole(c) != RoleRestaurant {
		return 0
	}
	return currentSubjectID(c)
}

func CurrentRiderID(c *gin.Context) uint {
	if CurrentRole(c) != RoleRider {
		return 0
	}
	return currentSubjectID(c)
}

package userControllers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/chillapavankarthik-codes/fullstack-sportstore/models"
	"github.com/chillapavankarthik-codes/fullstack-sportstore/store"
)

// GET /api/admin/users
//
// Public fields only, newest first.
func GetAllUsers(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc := st.Snapshot()

		users := make([]models.PublicUser, 0, len(doc.Users))
		for _, u := range doc.Users {
			users = append(users, u.Public())
		}
		sort.SliceStable(users, func(i, j int) bool {
			return users[i].CreatedAt.After(users[j].CreatedAt)
		})

		c.JSON(http.StatusOK, gin.H{"users": users})
	}
}

package v1

import (
	"net/http"

	"github.com/basketwise/backend/internal/auth"
	"github.com/basketwise/backend/internal/httputil"
	"github.com/basketwise/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers the routes for users with
// the RouterGroup that is passed.
func RegisterUserRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsUserList)
	r.POST("", auth.RequireAdmin(), CreateUser)

	r.OPTIONS("/me", OptionsUserMe)
	r.GET("/me", GetMe)
	r.PATCH("/me", UpdateMe)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Router			/v1/users [options]
func OptionsUserList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Router			/v1/users/me [options]
func OptionsUserMe(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Create user
// @Description	Creates a new user. The bearer token of the user is only returned in this response. Admins only.
// @Tags			Users
// @Accept			json
// @Produce		json
// @Success		201		{object}	UserCreateResponse
// @Failure		400		{object}	UserCreateResponse
// @Failure		401		{object}	httpError
// @Failure		403		{object}	httpError
// @Failure		500		{object}	UserCreateResponse
// @Param			user	body		UserCreate	true	"User"
// @Router			/v1/users [post]
func CreateUser(c *gin.Context) {
	var create UserCreate
	err := httputil.BindData(c, &create)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserCreateResponse{
			Error: &s,
		})
		return
	}

	token := models.NewToken()
	user := create.model()
	user.TokenHash = models.HashToken(token)

	err = models.DB.WithContext(c).Create(&user).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserCreateResponse{
			Error: &s,
		})
		return
	}

	data := newUser(c, user)
	c.JSON(http.StatusCreated, UserCreateResponse{Data: &data, Token: token})
}

// @Summary		Get the authenticated user
// @Description	Returns the profile of the authenticated user
// @Tags			Users
// @Produce		json
// @Success		200	{object}	UserResponse
// @Failure		401	{object}	httpError
// @Router			/v1/users/me [get]
func GetMe(c *gin.Context) {
	data := newUser(c, currentUser(c))
	c.JSON(http.StatusOK, UserResponse{Data: &data})
}

// @Summary		Update the authenticated user
// @Description	Updates the profile of the authenticated user. Only values to be updated need to be specified.
// @Tags			Users
// @Accept			json
// @Produce		json
// @Success		200		{object}	UserResponse
// @Failure		400		{object}	UserResponse
// @Failure		401		{object}	httpError
// @Failure		500		{object}	UserResponse
// @Param			user	body		UserEditable	true	"User"
// @Router			/v1/users/me [patch]
func UpdateMe(c *gin.Context) {
	user := currentUser(c)

	updateFields, err := httputil.GetBodyFields(c, UserEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	var data UserEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	update := models.User{Name: data.Name, Currency: data.Currency}
	merged := merge(user, update, updateFields)
	if err := merged.Validate(); err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	// Validate normalizes the currency
	update.Currency = merged.Currency

	err = models.DB.WithContext(c).Model(&user).Select("", updateFields...).Updates(update).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	r := newUser(c, user)
	c.JSON(http.StatusOK, UserResponse{Data: &r})
}

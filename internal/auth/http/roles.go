package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/permitd/permitd/internal/auth/service"
	"github.com/permitd/permitd/internal/auth/store"
	"github.com/permitd/permitd/pkg/httpx"
	"github.com/permitd/permitd/pkg/slogx"
)

// RolesManagementHandler is the administrative surface for roles, role
// assignments, and the permission table. Unlike the account surface it
// uses conventional HTTP statuses.
type RolesManagementHandler struct {
	RolesService *service.RolesService
}

type createRoleRequest struct {
	RoleName string `json:"role_name" validate:"required"`
}

type assignRoleRequest struct {
	Email    string `json:"email" validate:"required,email"`
	RoleName string `json:"role_name" validate:"required"`
}

type addPermissionRequest struct {
	RoleName    string `json:"role_name" validate:"required"`
	Endpoint    string `json:"endpoint" validate:"required"`
	HTTPMethod  string `json:"http_method" validate:"required"`
	Description string `json:"description"`
}

// HandleCreateRole creates a new role
//
//	@Summary	Create role
//	@Tags		RolesManagement
//	@Accept		json
//	@Produce	json
//	@Param		request	body		createRoleRequest	true	"Role name"
//	@Success	200		{object}	messageResponse
//	@Failure	400		{object}	messageResponse	"Role already exists"
//	@Security	BearerAuth
//	@Router		/api/rolesmanagement/create [post].
func (h *RolesManagementHandler) HandleCreateRole(w http.ResponseWriter, r *http.Request) {
	var req createRoleRequest
	if !decodeValid(w, r, &req) {
		return
	}

	_, err := h.RolesService.CreateRole(r.Context(), req.RoleName)
	switch {
	case errors.Is(err, service.ErrRoleExists):
		writeMessage(w, http.StatusBadRequest, "Role already exists")
	case err != nil:
		serverError(w, r, "create role", err)
	default:
		writeMessage(w, http.StatusOK, "Role created successfully")
	}
}

// HandleAssignRole grants a role to a user by email
//
//	@Summary	Assign role to user
//	@Tags		RolesManagement
//	@Accept		json
//	@Produce	json
//	@Param		request	body		assignRoleRequest	true	"Assignment"
//	@Success	200		{object}	messageResponse
//	@Failure	404		{object}	messageResponse	"User or role not found"
//	@Security	BearerAuth
//	@Router		/api/rolesmanagement/assign [post].
func (h *RolesManagementHandler) HandleAssignRole(w http.ResponseWriter, r *http.Request) {
	var req assignRoleRequest
	if !decodeValid(w, r, &req) {
		return
	}

	err := h.RolesService.AssignRole(r.Context(), req.Email, req.RoleName)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		writeMessage(w, http.StatusNotFound, "User not found")
	case errors.Is(err, service.ErrRoleNotFound):
		writeMessage(w, http.StatusNotFound, "Role not found")
	case err != nil:
		serverError(w, r, "assign role", err)
	default:
		writeMessage(w, http.StatusOK, "Role assigned successfully")
	}
}

// HandleListRoles lists every role
//
//	@Summary	List all roles
//	@Tags		RolesManagement
//	@Produce	json
//	@Success	200	{array}	domain.Role
//	@Security	BearerAuth
//	@Router		/api/rolesmanagement/getallroles [get].
func (h *RolesManagementHandler) HandleListRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.RolesService.ListRoles(r.Context())
	if err != nil {
		serverError(w, r, "list roles", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, roles)
}

// HandleAddPermission inserts a permission row for a role
//
//	@Summary	Grant an endpoint to a role
//	@Tags		RolesManagement
//	@Accept		json
//	@Produce	json
//	@Param		request	body		addPermissionRequest	true	"Permission row; http_method is upper-cased on write"
//	@Success	200		{object}	messageResponse
//	@Failure	400		{object}	messageResponse	"Permission already exists"
//	@Failure	404		{object}	messageResponse	"Role not found"
//	@Security	BearerAuth
//	@Router		/api/rolesmanagement/permissions [post].
func (h *RolesManagementHandler) HandleAddPermission(w http.ResponseWriter, r *http.Request) {
	var req addPermissionRequest
	if !decodeValid(w, r, &req) {
		return
	}

	_, err := h.RolesService.AddPermission(r.Context(), req.RoleName, req.Endpoint, req.HTTPMethod, req.Description)
	switch {
	case errors.Is(err, service.ErrRoleNotFound):
		writeMessage(w, http.StatusNotFound, "Role not found")
	case errors.Is(err, service.ErrPermissionExists):
		writeMessage(w, http.StatusBadRequest, "Permission already exists")
	case err != nil:
		serverError(w, r, "add permission", err)
	default:
		writeMessage(w, http.StatusOK, "API permission assigned to role successfully")
	}
}

// HandleListPermissions lists a role's permission rows
//
//	@Summary	List a role's permissions
//	@Tags		RolesManagement
//	@Produce	json
//	@Param		roleName	path	string	true	"Role name"
//	@Success	200			{array}	domain.Permission
//	@Security	BearerAuth
//	@Router		/api/rolesmanagement/permissions/{roleName} [get].
func (h *RolesManagementHandler) HandleListPermissions(w http.ResponseWriter, r *http.Request) {
	perms, err := h.RolesService.PermissionsForRole(r.Context(), r.PathValue("roleName"))
	if err != nil {
		serverError(w, r, "list permissions", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, perms)
}

// HandleDeletePermission removes a permission row by id
//
//	@Summary	Revoke a permission
//	@Description	Deletion takes effect on the next request; no caches to flush.
//	@Tags		RolesManagement
//	@Produce	json
//	@Param		id	path		string	true	"Permission id"
//	@Success	200	{object}	messageResponse
//	@Failure	404	{object}	messageResponse
//	@Security	BearerAuth
//	@Router		/api/rolesmanagement/permissions/{id} [delete].
func (h *RolesManagementHandler) HandleDeletePermission(w http.ResponseWriter, r *http.Request) {
	err := h.RolesService.DeletePermission(r.Context(), r.PathValue("id"))
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "Permission not found")
	case err != nil:
		serverError(w, r, "delete permission", err)
	default:
		writeMessage(w, http.StatusOK, "Permission removed successfully")
	}
}

// HandleUserRoles lists the roles a user holds
//
//	@Summary	List a user's roles
//	@Tags		RolesManagement
//	@Produce	json
//	@Param		email	path	string	true	"User email"
//	@Success	200		{array}	string
//	@Failure	404		{object}	messageResponse	"User not found"
//	@Security	BearerAuth
//	@Router		/api/rolesmanagement/user/{email} [get].
func (h *RolesManagementHandler) HandleUserRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.RolesService.RolesForUser(r.Context(), r.PathValue("email"))
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		writeMessage(w, http.StatusNotFound, "User not found")
	case err != nil:
		serverError(w, r, "list user roles", err)
	default:
		httpx.WriteJSON(w, http.StatusOK, roles)
	}
}

// HandleRemoveRole revokes a role from a user
//
//	@Summary	Remove a role from a user
//	@Tags		RolesManagement
//	@Produce	json
//	@Param		email		path		string	true	"User email"
//	@Param		roleName	path		string	true	"Role name"
//	@Success	200			{object}	messageResponse
//	@Failure	404			{object}	messageResponse
//	@Security	BearerAuth
//	@Router		/api/rolesmanagement/user/{email}/role/{roleName} [delete].
func (h *RolesManagementHandler) HandleRemoveRole(w http.ResponseWriter, r *http.Request) {
	err := h.RolesService.RemoveRole(r.Context(), r.PathValue("email"), r.PathValue("roleName"))
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		writeMessage(w, http.StatusNotFound, "User not found")
	case errors.Is(err, service.ErrRoleNotFound):
		writeMessage(w, http.StatusNotFound, "Role not found")
	case errors.Is(err, store.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "User does not hold this role")
	case err != nil:
		serverError(w, r, "remove role", err)
	default:
		writeMessage(w, http.StatusOK, "Role removed from user successfully")
	}
}

// decodeValid decodes a JSON body and runs struct validation, writing
// the 400 response itself on failure.
func decodeValid(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeInvalid(w, []string{"malformed JSON body"})
		return false
	}
	if err := validate.Struct(dst); err != nil {
		writeInvalid(w, validationMessages(err))
		return false
	}
	return true
}

func serverError(w http.ResponseWriter, r *http.Request, op string, err error) {
	slogx.FromContext(r.Context()).Error("roles management: "+op+" failed", slog.Any("error", err))
	writeMessage(w, http.StatusInternalServerError, "Internal server error")
}

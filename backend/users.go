package backend

import (
	"errors"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/storedocs/storedocs/core"
)

var usersTmpl = tmpl(`<h1>Users</h1>

	<ul>
		{{ range .Users }}
			<li>{{ UserLink . }} ({{ RoleLabel .Role }})</li>
		{{ end }}
	</ul>

	<h2>Create User</h2>

	<form method="post" class="form-inline">
		<div class="form-group">
			<input type="text" class="form-control" name="username" placeholder="Username">
			<select class="form-control mx-sm-3" name="role">
				{{ range .AllRoles }}
					<option value="{{ . }}">{{ RoleLabel . }}</option>
				{{ end }}
			</select>
			<button type="submit" class="btn btn-primary" name="submit_add">Create user</button>
		</div>
	</form>`)

type usersData struct {
	*context
}

func (data *usersData) Users() ([]core.DBUser, error) {
	return data.db.GetAllUsers(100000, 0) // assuming there are not more than 100k users
}

func (data *usersData) AllRoles() []core.Role {
	return core.AllRoles
}

func users(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	if !ctx.CanSuperEdit() {
		return core.ErrUnauthorized
	}

	if req.Method == http.MethodPost {

		var newUserName = strings.TrimSpace(req.PostFormValue("username"))
		var newUserRole = core.Role(req.PostFormValue("role"))

		if newUserName == "" {
			return errors.New("missing username")
		}

		if err := ctx.db.InsertUser(newUserName, newUserRole); err != nil {
			return err
		}

		ctx.Success("user %s has been created", newUserName)
		ctx.SeeOther("/users")
		return nil
	}

	return usersTmpl.Execute(w, &usersData{
		context: ctx,
	})
}

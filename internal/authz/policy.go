// Package authz holds the ownership policy for projects and tasks as pure
// decision functions. Callers resolve the resource first (existence before
// ownership, so a missing id is always 404 and never leaks into 403) and
// only then ask for a decision; nothing here touches the database.
package authz

// CanCreateProject reports whether a principal may create a project. Any
// authenticated principal may; the new project's owner becomes the principal.
func CanCreateProject(userID uint) bool {
	return userID != 0
}

// CanAccessProject reports whether a principal may read, rename or delete a
// project. Only the owner may.
func CanAccessProject(userID, ownerID uint) bool {
	return userID == ownerID
}

// CanListProjectTasks reports whether a principal may view the task list of
// a project: the owner, or a non-owner assigned to at least one task in it.
// An assignee gets exactly this read-only list view and nothing else — no
// single-task reads, no writes, no access to the project itself.
func CanListProjectTasks(userID, ownerID uint, assignedToAny bool) bool {
	return userID == ownerID || assignedToAny
}

// CanCreateTask reports whether a principal may create a task under a
// project. Only the project's owner may.
func CanCreateTask(userID, projectOwnerID uint) bool {
	return userID == projectOwnerID
}

// CanAccessTask reports whether a principal may read, update or delete an
// individual task. Only the owning project's owner may; being the task's
// assignee grants nothing here.
func CanAccessTask(userID, projectOwnerID uint) bool {
	return userID == projectOwnerID
}

package middleware

import (
	"net/http"
	"slices"

	"github.com/vfg2006/collections-manager-api/pkg/apiErrors"
	"github.com/vfg2006/collections-manager-api/pkg/log"
)

// Perfis de acesso gravados em users.role_id
const (
	RoleAdmin      = 1
	RoleSupervisor = 2
	RoleCollector  = 3
)

var roleNames = map[int]string{
	RoleAdmin:      "admin",
	RoleSupervisor: "supervisor",
	RoleCollector:  "collector",
}

// RoleName retorna o nome do perfil, ou "unknown" para ids fora da tabela
func RoleName(roleID int) string {
	if name, ok := roleNames[roleID]; ok {
		return name
	}
	return "unknown"
}

// RequireRoles libera a rota apenas para os perfis informados. Sem claims no contexto responde 401,
// com perfil fora da lista responde 403 informando os perfis aceitos.
func RequireRoles(allowed ...int) func(http.Handler) http.Handler {
	required := make([]string, 0, len(allowed))
	for _, roleID := range allowed {
		required = append(required, RoleName(roleID))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := log.ForContext(r.Context()).WithField("path", r.URL.Path)

			claims, ok := UserFromContext(r.Context())
			if !ok {
				logger.Warn("Rota protegida acessada sem credenciais")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			if !slices.Contains(allowed, claims.UserRoleID) {
				logger.WithFields(log.Fields{
					"user_id": claims.UserID,
					"role":    RoleName(claims.UserRoleID),
				}).Warn("Perfil sem permissão para a rota")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Perfil "+RoleName(claims.UserRoleID)+" não pode acessar este recurso",
					map[string][]string{"required_roles": required})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly libera a gestão de usuários
func AdminOnly() func(http.Handler) http.Handler {
	return RequireRoles(RoleAdmin)
}

// AdminOrSupervisor libera configuração de pesos, distribuição da carteira, relatórios gerenciais e jobs
func AdminOrSupervisor() func(http.Handler) http.Handler {
	return RequireRoles(RoleAdmin, RoleSupervisor)
}

// AllRoles exige apenas um usuário autenticado com perfil conhecido
func AllRoles() func(http.Handler) http.Handler {
	return RequireRoles(RoleAdmin, RoleSupervisor, RoleCollector)
}

package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"go-portfolio-api/internal/core/auth"
	"go-portfolio-api/internal/domain"
	"go-portfolio-api/internal/transport/http/handler"
	mdw "go-portfolio-api/internal/transport/http/middleware"
)

// NewAPIEngine 组装中间件链和路由表。
// 路径排布（/project、/update/:id、/skill 单复数混用）沿用线上前端已经依赖的形状。
func NewAPIEngine(
	l *zap.Logger,
	jwter *auth.JWTer,
	projects domain.ProjectRepository,
	skills domain.SkillRepository,
	users domain.UserRepository,
) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "portfolio server is running") })

	// 网关：verify 解 token，admin 在其后做角色实查
	verify := mdw.Verify(jwter)
	admin := mdw.RequireAdmin(users)

	tokenH := handler.NewTokenHandler(jwter)
	projectH := handler.NewProjectHandler(projects)
	skillH := handler.NewSkillHandler(skills)
	userH := handler.NewUserHandler(users)

	r.POST("/jwt", tokenH.Issue)

	r.GET("/project", projectH.List)
	r.POST("/project", verify, admin, projectH.Insert)
	r.GET("/update/:id", projectH.FindByID)
	r.PUT("/update/:id", verify, admin, projectH.Upsert)
	r.DELETE("/project/delete/:id", verify, admin, projectH.Delete)

	r.GET("/skills", skillH.List)
	r.POST("/skill", verify, admin, skillH.Insert)
	r.DELETE("/skill/delete/:id", verify, admin, skillH.Delete)

	r.POST("/user", userH.Create)
	r.GET("/user", verify, admin, userH.List)
	r.GET("/user/admin/:email", verify, userH.AdminStatus)
	r.PATCH("/user/admin/:id", verify, admin, userH.Promote)
	r.DELETE("/user/delete/:id", verify, admin, userH.Delete)

	return r
}

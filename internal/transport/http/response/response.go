package response

// 成功响应直接回写存储层原始结果，不套信封；
// 这里只统一网关/错误路径的 {"message": ...} 形态。

type Body struct {
	Message string `json:"message"`
}

func Msg(s string) Body { return Body{Message: s} }

// 网关拒绝统一用原始实现的提示语
const ForbiddenAccess = "forbidden access"

func Forbidden() Body { return Body{Message: ForbiddenAccess} }

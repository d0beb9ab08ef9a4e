package world

// State is the complete simulated environment plus player progress. One
// State is created per session and passed explicitly to everything that
// reads or mutates it; there is no package-level state.
type State struct {
	Root *Dir

	Processes   map[int]*Process
	Containers  []*Container
	Pods        []*Pod
	Deployments []*Deployment

	XP           int
	CurrentLevel string
}

// AddXP adds n experience points. Negative n is ignored.
func (s *State) AddXP(n int) {
	if n > 0 {
		s.XP += n
	}
}

// Resolve walks an absolute path from the root and returns the entry it
// names. "/" resolves to the root directory itself.
func (s *State) Resolve(path string) (Entry, bool) {
	var cur Entry = s.Root
	for _, part := range SplitPath(path) {
		dir, ok := cur.(*Dir)
		if !ok {
			return nil, false
		}
		child, ok := dir.Lookup(part)
		if !ok {
			return nil, false
		}
		cur = child
	}
	return cur, true
}

// Dir resolves a path and returns it as a directory.
func (s *State) Dir(path string) (*Dir, bool) {
	e, ok := s.Resolve(path)
	if !ok {
		return nil, false
	}
	d, ok := e.(*Dir)
	return d, ok
}

// FileContent resolves a path and returns the file's content.
func (s *State) FileContent(path string) (string, bool) {
	e, ok := s.Resolve(path)
	if !ok {
		return "", false
	}
	f, ok := e.(*File)
	if !ok {
		return "", false
	}
	return f.Content, true
}

const seedSyslog = `May 22 10:00:01 server systemd[1]: Started Session 1 of user sysadmin.
May 22 10:05:05 server apache2[1234]: AH00558: apache2: Could not reliably determine the server's fully qualified domain name
May 22 10:05:10 server apache2[1234]: (98)Address already in use: AH00072: make_sock: could not bind to address 0.0.0.0:80
May 22 10:05:11 server apache2[1234]: No space left on device
May 22 10:05:12 server systemd[1]: apache2.service: Control process exited, code=exited status=1
May 22 10:05:13 server systemd[1]: apache2.service: Failed with result 'exit-code'.
May 22 10:05:15 server CRON[12345]: (root) CMD (command -v dracut > /dev/null && dracut -c /etc/dracut.conf --force --kver 5.15.0-78-generic)`

const seedPasswd = `root:x:0:0:root:/root:/bin/bash
sysadmin:x:1000:1000:sysadmin:/home/sysadmin:/bin/bash`

// NewState builds the scenario world every session starts from: a broken
// web server, a full log partition, a crashed container, and a pod the
// scheduler cannot place.
func NewState() *State {
	root := NewDir()
	root.Put("bin", NewDir())

	etc := NewDir()
	apache := NewDir()
	apache.Put("apache2.conf", NewFile("config content"))
	etc.Put("apache2", apache)
	nginx := NewDir()
	nginx.Put("nginx.conf", NewFile("config content"))
	etc.Put("nginx", nginx)
	appConf := NewDir()
	appConf.Put("app.conf", NewFile("some app config"))
	etc.Put("my_app_conf", appConf)
	etc.Put("passwd", NewFile(seedPasswd))
	root.Put("etc", etc)

	home := NewDir()
	sysadmin := NewDir()
	sysadmin.Put("reports", NewDir())
	documents := NewDir()
	documents.Put("important_doc.txt", NewFile("Sensitive data here."))
	sysadmin.Put("documents", documents)
	home.Put("sysadmin", sysadmin)
	home.Put("guest", NewDir())
	root.Put("home", home)

	varDir := NewDir()
	logDir := NewDir()
	logDir.Put("syslog", NewFile(seedSyslog))
	varDir.Put("log", logDir)
	www := NewDir()
	html := NewDir()
	html.Put("index.html", NewFile("<html><body><h1>It works!</h1></body></html>"))
	www.Put("html", html)
	varDir.Put("www", www)
	root.Put("var", varDir)

	root.Put("tmp", NewDir())

	return &State{
		Root: root,
		Processes: map[int]*Process{
			1:    {PID: 1, Name: "systemd", State: ProcRunning, Command: "/sbin/init"},
			1234: {PID: 1234, Name: "apache2", State: ProcStopped, Command: "/usr/sbin/apache2 -k start"},
			5678: {PID: 5678, Name: "monitor.py", State: ProcRunning, Command: "/usr/bin/python3 /opt/monitoring/monitor.py"},
			9000: {PID: 9000, Name: "nginx", State: ProcRunning, Command: `/usr/sbin/nginx -g "daemon on;"`},
		},
		Containers: []*Container{
			{ID: "a1b2c3d4e5f6", Name: "web_app_prod", Image: "nginx:latest", Status: ContainerExited, Ports: "80->80/tcp"},
			{ID: "b2c3d4e5f6a7", Name: "db_service", Image: "postgres:13", Status: ContainerRunning, Ports: "5432->5432/tcp"},
		},
		Pods: []*Pod{
			{Name: "frontend-abcd-12345", Status: PodRunning, Namespace: "default", Deployment: "frontend"},
			{Name: "backend-efgh-67890", Status: PodPending, Namespace: "default", Deployment: "backend"},
			{Name: "nginx-app-xyz-54321", Status: PodRunning, Namespace: "devops-tools", Deployment: "nginx-app"},
		},
		Deployments: []*Deployment{
			{Name: "frontend", Replicas: 1},
			{Name: "backend", Replicas: 1},
			{Name: "nginx-app", Replicas: 2},
		},
	}
}
